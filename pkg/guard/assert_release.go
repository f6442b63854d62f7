// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Release builds trust FromUnchecked callers.

//go:build floatguard_release

package guard

// debugAssertions is off; FromUnchecked wraps whatever it is given.
const debugAssertions = false
