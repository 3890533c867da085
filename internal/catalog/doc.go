// Package catalog holds the static device profile table and the two
// operations built on it: generating phantom identities and classifying a
// TTL/window-size pair into an OS family.
//
// Every operation is total. Unknown device types resolve to the linux
// profile instead of failing, and nothing here logs or returns an error.
package catalog
