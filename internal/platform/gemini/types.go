// Package gemini provides the generation.TermProvider implementation backed
// by Google's Gemini API.
package gemini

// promptData represents the data passed to the prompt template
type promptData struct {
	// Count is the number of new terms requested from the model
	Count int

	// Topic is the optional topic hint steering generation
	Topic string

	// Existing is a sample of terms already in the pool
	Existing []string
}

// ResponseSchema represents the expected structure of the Gemini API response
type ResponseSchema struct {
	// Terms is the array of game terms generated by the model
	Terms []string `json:"terms"`
}
