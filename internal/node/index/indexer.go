package index

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/search"
)

const nodeMapping = `{
	"mappings": {
		"properties": {
			"tree": { "type": "keyword" },
			"id": { "type": "keyword" },
			"parent_id": { "type": "keyword" },
			"node_type": { "type": "keyword" },
			"name_en": { "type": "text", "analyzer": "english" },
			"name_fr": { "type": "text", "analyzer": "french" },
			"is_active": { "type": "boolean" },
			"sort_order": { "type": "integer" },
			"created_at": { "type": "date" },
			"updated_at": { "type": "date" }
		}
	}
}`

// Engine is the subset of search.Client the indexer needs.
type Engine interface {
	CreateIndex(ctx context.Context, index, mapping string) error
	Index(ctx context.Context, index, id string, doc interface{}) error
	Delete(ctx context.Context, index, id string) error
	Search(ctx context.Context, index string, query map[string]interface{}) (*search.SearchResponse, error)
}

type document struct {
	Tree model.Tree `json:"tree"`
	model.Node
}

// NodeIndexer keeps both trees in one index, keyed by tree and node id.
type NodeIndexer struct {
	engine Engine
	index  string
}

func NewNodeIndexer(engine Engine, index string) *NodeIndexer {
	return &NodeIndexer{engine: engine, index: index}
}

func (i *NodeIndexer) EnsureIndex(ctx context.Context) error {
	return i.engine.CreateIndex(ctx, i.index, nodeMapping)
}

func docID(tree model.Tree, id string) string {
	return string(tree) + ":" + id
}

func (i *NodeIndexer) IndexNode(ctx context.Context, tree model.Tree, n *model.Node) error {
	return i.engine.Index(ctx, i.index, docID(tree, n.ID), document{Tree: tree, Node: *n})
}

func (i *NodeIndexer) DeleteNode(ctx context.Context, tree model.Tree, id string) error {
	return i.engine.Delete(ctx, i.index, docID(tree, id))
}

// SearchNodes runs a prefix match over both language names within one tree.
func (i *NodeIndexer) SearchNodes(ctx context.Context, tree model.Tree, term string, limit int) ([]model.Node, error) {
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":  term,
							"type":   "phrase_prefix",
							"fields": []string{"name_en^2", "name_fr"},
						},
					},
				},
				"filter": []map[string]interface{}{
					{"term": map[string]interface{}{"tree": string(tree)}},
				},
			},
		},
		"size": limit,
	}

	res, err := i.engine.Search(ctx, i.index, q)
	if err != nil {
		return nil, err
	}

	nodes := make([]model.Node, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc document
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, err
		}
		nodes = append(nodes, doc.Node)
	}
	return nodes, nil
}
