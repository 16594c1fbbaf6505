// Package rewrite promotes declaration visibility in parsed files.
//
// Simple declarations, structs with their fields, unions, inline
// modules, inherent impl members and extern block members all become
// pub. A #[pubsweep(exclude)] marker on any node opts it out and is
// removed from the output. Trait impls, use declarations, extern
// crates and macros are never touched.
package rewrite
