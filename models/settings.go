// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultMessageInterval is the polling interval used until the user
// changes it.
const DefaultMessageInterval = time.Second

// Settings are the user preferences kept by the client between runs.
//
// RememberedPassword is stored in clear text to prefill the password input.
// It is a convenience, not the credential vault.
type Settings struct {
	MessageInterval    time.Duration
	Channel            string
	RememberedName     string
	RememberedPassword string
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{
		MessageInterval: DefaultMessageInterval,
		Channel:         DefaultChannel,
	}
}
