// Package changelog turns commit subjects into a categorized markdown block
// and prepends it to a repository's CHANGELOG.md.
//
// Subjects are filtered against Denylist, then bucketed by a literal
// "<type>:" prefix checked in Sections order. Anything without a known
// prefix lands in Others.
package changelog
