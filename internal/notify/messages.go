// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package notify

// Titles and descriptions shown by the settings panel.
const (
	TitleSaved      = "Saved"
	TitleSaveFailed = "Save failed"
	TitleLoadFailed = "Load failed"
	TitleError      = "Error"
	TitleSuccess    = "Success"

	DescSaved         = "Site settings updated"
	DescRetryLater    = "Please try again later"
	DescEnterDomain   = "Please enter a domain"
	DescDomainExists  = "Domain already exists"
	DescDomainAdded   = "Domain added"
	DescDomainRemoved = "Domain removed"
)

// SaveSucceeded is raised after the store accepted the settings.
func SaveSucceeded() Notice {
	return Notice{Title: TitleSaved, Description: DescSaved, Level: LevelSuccess}
}

// SaveFailed is raised when the store rejected the settings. The description
// is the error message when there is one.
func SaveFailed(err error) Notice {
	desc := DescRetryLater
	if err != nil && err.Error() != "" {
		desc = err.Error()
	}
	return Notice{Title: TitleSaveFailed, Description: desc, Level: LevelError}
}

// LoadFailed is raised when the settings could not be fetched for a reason
// other than nothing being stored yet.
func LoadFailed(err error) Notice {
	desc := DescRetryLater
	if err != nil && err.Error() != "" {
		desc = err.Error()
	}
	return Notice{Title: TitleLoadFailed, Description: desc, Level: LevelError}
}

// DomainEmpty rejects a blank domain input.
func DomainEmpty() Notice {
	return Notice{Title: TitleError, Description: DescEnterDomain, Level: LevelError}
}

// DomainDuplicate rejects a domain already in the list.
func DomainDuplicate() Notice {
	return Notice{Title: TitleError, Description: DescDomainExists, Level: LevelError}
}

// DomainAdded confirms an append to the domain list.
func DomainAdded() Notice {
	return Notice{Title: TitleSuccess, Description: DescDomainAdded, Level: LevelSuccess}
}

// DomainRemoved confirms a removal, including of an absent domain.
func DomainRemoved() Notice {
	return Notice{Title: TitleSuccess, Description: DescDomainRemoved, Level: LevelSuccess}
}
