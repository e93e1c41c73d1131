package models

type Document struct {
	FilePath  string
	FileName  string
	Data      []byte
	SizeBytes int64
	PageCount int
}

type Narration struct {
	Text     string
	Provider string
	Model    string
	Cached   bool
}
