// Package xmeml builds and serializes the editor's project-interchange XML.
//
// The emitted document is a single sequence holding a transparent color
// matte generator clip whose only purpose is to carry markers; every marker
// is duplicated at sequence level because importers disagree about which
// location they read.
package xmeml
