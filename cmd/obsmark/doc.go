// Command obsmark converts a screen recorder's timestamp marker log into an
// editor project XML file carrying the markers.
package main
