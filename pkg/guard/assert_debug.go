// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: FromUnchecked asserts its contract unless built for release.

//go:build !floatguard_release

package guard

// debugAssertions enables the predicate check in FromUnchecked.
const debugAssertions = true
