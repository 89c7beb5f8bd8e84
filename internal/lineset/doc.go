// SPDX-License-Identifier: MPL-2.0

// Package lineset reads text files into ordered line sequences and
// partitions raw lines into in-range integers and rejected strings.
package lineset
