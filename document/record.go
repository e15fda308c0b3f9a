package document

import "fmt"

// Record is the single normalized entry read out of a document, regardless of its format.
type Record struct {
	Name string `json:"name"`
	Age  uint16 `json:"age"`
}

func (r Record) String() string {
	return fmt.Sprintf("Record[Name=%q,Age=%d]", r.Name, r.Age)
}
