// Package view describes small UI fragments (decorations such as the field
// tooltip icon) as typed element trees and renders them into sanitised markup.
// Form helpers build Elements; renderers decide how to serialise them.
package view
