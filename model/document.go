package model

// Document is a single corpus record: a unique non-negative integer
// identifier and the free-text content that followed it on the corpus line.
// The content keeps the article name and body as one string; the index does
// not distinguish between them.
type Document struct {
	ID      int
	Content string
}

// DocumentSet maps document IDs to their content. Loading a corpus produces
// one of these; the index builder consumes it.
type DocumentSet map[int]string

// Add records a document's content under its ID. A duplicate ID overwrites
// the earlier entry (last occurrence wins).
func (ds DocumentSet) Add(id int, content string) {
	ds[id] = content
}
