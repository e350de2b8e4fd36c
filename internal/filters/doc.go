// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a response for output.
//
// Filters are key-operator-target expressions joined by a delimiter (comma
// by default, AWSCTL_FILTER_DELIM to override). Operators:
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than (numeric when both sides are numbers)
//   - > : greater than (numeric when both sides are numbers)
//   - @ : contains (substring, list member or map key)
//   - / : regular expression match
//
// Any operator may be negated with a leading !. A key with no operator keeps
// rows where the key is present.
//
// Examples:
//
//   - "Status=AVAILABLE"
//   - "WorkgroupName^dev-"
//   - "BaseCapacity>32"
//   - "Tags@owner"
//
// Keys are matched case-insensitively against attribute output keys (see
// package attrs). Other keys are treated as paths into the row.
package filters
