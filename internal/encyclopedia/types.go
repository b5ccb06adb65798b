package encyclopedia

// LookupTitleInput contains parameters for a title lookup
type LookupTitleInput struct {
	// Title is the text to look up, typically a team's two words joined by a space
	Title string
}

// LookupTitleOutput contains the result of a title lookup
type LookupTitleOutput struct {
	// Found indicates the encyclopedia has an entry for the title
	Found bool

	// URL is the canonical page URL when Found is true
	URL string
}
