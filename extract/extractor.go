package extract

import (
	"context"

	"paper2audio/models"
)

// DefaultPrompt asks the model for the text a narrator would read aloud.
const DefaultPrompt = "Print out all of the text in the paper that a narrator would read aloud. " +
	"Include the title and section headings. Do not include citation numbers. " +
	"Do not include acknowledgements, bibliography, reporting summary, or competing interests. " +
	"Do not preface with any text other than: This is an automated voice reading <The title of the paper> " +
	"by <The first author> et al."

const pdfMIMEType = "application/pdf"

// Extractor turns a PDF into narratable text by way of a hosted model. An
// empty prompt selects DefaultPrompt.
type Extractor interface {
	Extract(ctx context.Context, doc *models.Document, prompt string) (*models.Narration, error)
}
