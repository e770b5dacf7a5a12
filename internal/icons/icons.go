// Package icons maps item slugs to their visual representation. The
// mapping is static; unknown slugs fall back to a generic placeholder
// glyph rather than failing.
package icons

// Visual is the glyph and accent color rendered for an item.
type Visual struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// placeholder is the fallback for slugs without a dedicated visual.
var placeholder = Visual{Glyph: "🖼️", Color: "#9e9e9e"}

var visuals = map[string]Visual{
	// colors
	"red":    {Glyph: "🟥", Color: "#e53935"},
	"orange": {Glyph: "🟧", Color: "#fb8c00"},
	"yellow": {Glyph: "🟨", Color: "#fdd835"},
	"green":  {Glyph: "🟩", Color: "#43a047"},
	"blue":   {Glyph: "🟦", Color: "#1e88e5"},
	"purple": {Glyph: "🟪", Color: "#8e24aa"},
	"pink":   {Glyph: "🌸", Color: "#ec407a"},
	"brown":  {Glyph: "🟫", Color: "#6d4c41"},
	"black":  {Glyph: "⬛", Color: "#212121"},
	"white":  {Glyph: "⬜", Color: "#fafafa"},

	// vehicles
	"car":        {Glyph: "🚗", Color: "#e53935"},
	"bus":        {Glyph: "🚌", Color: "#fdd835"},
	"truck":      {Glyph: "🚚", Color: "#8d6e63"},
	"fire-truck": {Glyph: "🚒", Color: "#e53935"},
	"train":      {Glyph: "🚂", Color: "#5c6bc0"},
	"airplane":   {Glyph: "✈️", Color: "#90caf9"},
	"boat":       {Glyph: "⛵", Color: "#29b6f6"},
	"bicycle":    {Glyph: "🚲", Color: "#66bb6a"},
	"helicopter": {Glyph: "🚁", Color: "#78909c"},
	"tractor":    {Glyph: "🚜", Color: "#7cb342"},

	// food
	"apple":  {Glyph: "🍎", Color: "#e53935"},
	"banana": {Glyph: "🍌", Color: "#fdd835"},
	"bread":  {Glyph: "🍞", Color: "#d7a86e"},
	"cheese": {Glyph: "🧀", Color: "#fbc02d"},
	"egg":    {Glyph: "🥚", Color: "#fff3e0"},
	"grapes": {Glyph: "🍇", Color: "#7e57c2"},
	"milk":   {Glyph: "🥛", Color: "#eceff1"},
	"orange-fruit": {Glyph: "🍊", Color: "#fb8c00"},
	"pizza":      {Glyph: "🍕", Color: "#ef6c00"},
	"strawberry": {Glyph: "🍓", Color: "#e53935"},

	// animals
	"cat":     {Glyph: "🐱", Color: "#ffb74d"},
	"dog":     {Glyph: "🐶", Color: "#a1887f"},
	"cow":     {Glyph: "🐮", Color: "#bcaaa4"},
	"duck":    {Glyph: "🦆", Color: "#fdd835"},
	"fish":    {Glyph: "🐟", Color: "#4fc3f7"},
	"horse":   {Glyph: "🐴", Color: "#8d6e63"},
	"lion":    {Glyph: "🦁", Color: "#ffb300"},
	"monkey":  {Glyph: "🐵", Color: "#a1887f"},
	"rabbit":  {Glyph: "🐰", Color: "#f5f5f5"},
	"rooster": {Glyph: "🐓", Color: "#ef5350"},

	// jobs
	"doctor":      {Glyph: "🧑‍⚕️", Color: "#4fc3f7"},
	"firefighter": {Glyph: "🧑‍🚒", Color: "#e53935"},
	"farmer":      {Glyph: "🧑‍🌾", Color: "#7cb342"},
	"teacher":     {Glyph: "🧑‍🏫", Color: "#7e57c2"},
	"chef":        {Glyph: "🧑‍🍳", Color: "#ff8a65"},
	"police":      {Glyph: "👮", Color: "#3949ab"},
	"pilot":       {Glyph: "🧑‍✈️", Color: "#455a64"},
	"astronaut":   {Glyph: "🧑‍🚀", Color: "#90a4ae"},
}

// Lookup returns the visual for a slug, or the placeholder when the
// slug has no dedicated visual.
func Lookup(slug string) Visual {
	if v, ok := visuals[slug]; ok {
		return v
	}
	return placeholder
}
