// Package seed reads taxonomy files into batch node inputs.
//
// A file lists root entries; each entry may nest children. Nested entries take the
// enclosing entry as parent, so a whole subtree can be written without ids:
//
//	tree: category
//	nodes:
//	  - name_en: Apparel
//	    name_fr: Vêtements
//	    type: Department
//	    children:
//	      - name_en: Shirts
//	        name_fr: Chemises
//	        type: Category
//	        attributes:
//	          - kind: mandatory
//	            name_en: Size
//	            name_fr: Taille
//	            type: string
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/node/dto"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type File struct {
	Tree  model.Tree `yaml:"tree"`
	Nodes []Entry    `yaml:"nodes"`
}

type Entry struct {
	ID         string      `yaml:"id"`
	ParentID   string      `yaml:"parent_id"` // Only read on root entries; attaches them to an existing node
	NameEn     string      `yaml:"name_en"`
	NameFr     string      `yaml:"name_fr"`
	Type       string      `yaml:"type"`
	Active     *bool       `yaml:"active"`
	SortOrder  *int        `yaml:"sort_order"`
	Attributes []Attribute `yaml:"attributes"`
	Children   []Entry     `yaml:"children"`
}

type Attribute struct {
	Kind      string `yaml:"kind"`
	NameEn    string `yaml:"name_en"`
	NameFr    string `yaml:"name_fr"`
	Type      string `yaml:"type"`
	SortOrder *int   `yaml:"sort_order"`
}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a seed file. Unknown keys are rejected so typos do not silently
// drop data. A missing tree means the category tree.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{Tree: model.TreeCategory}, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if f.Tree == "" {
		f.Tree = model.TreeCategory
	}
	if !f.Tree.Valid() {
		return nil, fmt.Errorf("unknown tree %q", f.Tree)
	}
	return &f, nil
}

// Entries flattens the file depth first, parents before children, which is the
// order the batch insert requires. Entries without an id get a generated one.
func (f *File) Entries() []dto.NodeWithAttributesInput {
	var out []dto.NodeWithAttributesInput
	for i := range f.Nodes {
		var parent *string
		if f.Nodes[i].ParentID != "" {
			p := f.Nodes[i].ParentID
			parent = &p
		}
		out = flatten(out, &f.Nodes[i], parent)
	}
	return out
}

func flatten(out []dto.NodeWithAttributesInput, e *Entry, parentID *string) []dto.NodeWithAttributesInput {
	id := e.ID
	if id == "" {
		id = uuid.New().String()
	}

	in := dto.NodeWithAttributesInput{
		Node: dto.AddNodeInput{
			ID:        id,
			NameEn:    e.NameEn,
			NameFr:    e.NameFr,
			NodeType:  model.NodeType(e.Type),
			ParentID:  parentID,
			IsActive:  e.Active,
			SortOrder: e.SortOrder,
		},
	}
	for _, a := range e.Attributes {
		in.Attributes = append(in.Attributes, dto.AttributeInput{
			Kind:          model.AttributeKind(a.Kind),
			NameEn:        a.NameEn,
			NameFr:        a.NameFr,
			AttributeType: a.Type,
			SortOrder:     a.SortOrder,
		})
	}
	out = append(out, in)

	for i := range e.Children {
		out = flatten(out, &e.Children[i], &id)
	}
	return out
}
