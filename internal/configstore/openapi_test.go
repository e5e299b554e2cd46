// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package configstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedOpenAPIIsValid(t *testing.T) {
	doc, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)

	item := doc.Paths.Find(ConfigPath)
	require.NotNil(t, item, "contract must describe %s", ConfigPath)
	require.NotNil(t, item.Get)
	require.NotNil(t, item.Post)
}
