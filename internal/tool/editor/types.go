package editor

import "fmt"

// -- View --

type ViewRequest struct {
	Path string `json:"path"`
	// ViewRange optionally limits a file view to [start, end] 1-based
	// inclusive lines. An end of -1 means through the last line.
	ViewRange []int `json:"view_range,omitempty"`
}

func (r *ViewRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	if r.ViewRange != nil {
		if len(r.ViewRange) != 2 {
			return ErrInvalidRange
		}
		start, end := r.ViewRange[0], r.ViewRange[1]
		if start < 1 || (end != -1 && end < start) {
			return ErrInvalidRange
		}
	}
	return nil
}

func (r *ViewRequest) String() string {
	return "Viewing " + r.Path
}

type ViewResponse struct {
	Path    string
	Listing string
	Err     string
}

// -- Create --

type CreateRequest struct {
	Path     string `json:"path"`
	FileText string `json:"file_text"`
}

func (r *CreateRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

func (r *CreateRequest) String() string {
	return "Creating " + r.Path
}

type CreateResponse struct {
	Path  string
	Bytes int
	Err   string
}

// -- StrReplace --

type StrReplaceRequest struct {
	Path   string `json:"path"`
	OldStr string `json:"old_str"`
	NewStr string `json:"new_str"`
}

func (r *StrReplaceRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	if r.OldStr == "" {
		return ErrOldStrRequired
	}
	return nil
}

func (r *StrReplaceRequest) String() string {
	return "Editing " + r.Path
}

type StrReplaceResponse struct {
	Path         string
	Replacements int
	Diff         string
	AddedLines   int
	RemovedLines int
	Err          string
}

// -- Insert --

type InsertRequest struct {
	Path string `json:"path"`
	// InsertLine is the 1-based line to insert after; 0 inserts at the
	// top of the file.
	InsertLine int    `json:"insert_line"`
	NewStr     string `json:"new_str"`
}

func (r *InsertRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	if r.InsertLine < 0 {
		return ErrNegativeLine
	}
	return nil
}

func (r *InsertRequest) String() string {
	return fmt.Sprintf("Inserting into %s at line %d", r.Path, r.InsertLine)
}

type InsertResponse struct {
	Path         string
	Diff         string
	AddedLines   int
	RemovedLines int
	Err          string
}
