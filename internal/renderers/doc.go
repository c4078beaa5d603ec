// Package renderers provides implementations of the Renderer interface,
// one per render mode. The ListingService picks a renderer by mode.
package renderers
