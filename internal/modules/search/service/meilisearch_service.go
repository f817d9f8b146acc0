package service

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"smat.com/campusapi/internal/entity"
)

const postsIndex = "community_posts"

// PostIndex keeps community posts searchable by title and content.
type PostIndex interface {
	IndexPosts(posts []*entity.Post) error
	// SearchPostIDs returns matching post ids, best match first.
	SearchPostIDs(query string, limit int64) ([]uuid.UUID, error)
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
	logger    *zap.Logger
}

// NewMeiliSearchService returns nil when host is empty so callers fall back
// to database search.
func NewMeiliSearchService(host, apiKey string, logger *zap.Logger) PostIndex {
	if host == "" {
		logger.Info("MEILISEARCH_HOST not set, post search uses the database")
		return nil
	}
	if apiKey == "" {
		logger.Warn("MEILI_MASTER_KEY is not set")
	}

	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}

	client := meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
	return newMeiliSearchService(client, logger)
}

func newMeiliSearchService(client meilisearch.ServiceManager, logger *zap.Logger) *meiliSearchService {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
	s.initIndex()
	return s
}

func (s *meiliSearchService) initIndex() {
	filterable := []string{"category", "writer"}
	filterableInterface := make([]any, len(filterable))
	for i, v := range filterable {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(postsIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		s.logger.Warn("failed to update filterable attributes", zap.String("index", postsIndex), zap.Error(err))
	}

	sortable := []string{"created_at"}
	if _, err := s.client.Index(postsIndex).UpdateSortableAttributes(&sortable); err != nil {
		s.logger.Warn("failed to update sortable attributes", zap.String("index", postsIndex), zap.Error(err))
	}

	searchable := []string{"title", "content"}
	if _, err := s.client.Index(postsIndex).UpdateSearchableAttributes(&searchable); err != nil {
		s.logger.Warn("failed to update searchable attributes", zap.String("index", postsIndex), zap.Error(err))
	}
}

type postDoc struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Writer    string `json:"writer"`
	CreatedAt int64  `json:"created_at"`
}

func (s *meiliSearchService) cleanContentForIndex(content string) string {
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)

	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *meiliSearchService) toDoc(post *entity.Post) postDoc {
	return postDoc{
		ID:        post.ID.String(),
		Category:  string(post.Category),
		Title:     s.cleanContentForIndex(post.Title),
		Content:   s.cleanContentForIndex(post.Content),
		Writer:    post.Writer,
		CreatedAt: post.CreatedAt.Unix(),
	}
}

func (s *meiliSearchService) IndexPosts(posts []*entity.Post) error {
	if len(posts) == 0 {
		return nil
	}

	docs := make([]postDoc, 0, len(posts))
	for _, p := range posts {
		docs = append(docs, s.toDoc(p))
	}

	task, err := s.client.Index(postsIndex).AddDocuments(docs, strPtr("id"))
	if err != nil {
		return fmt.Errorf("index posts: %w", err)
	}
	s.logger.Info("queued posts for indexing",
		zap.Int("count", len(docs)),
		zap.Int64("task_uid", task.TaskUID),
	)
	return nil
}

func (s *meiliSearchService) SearchPostIDs(query string, limit int64) ([]uuid.UUID, error) {
	resp, err := s.client.Index(postsIndex).Search(query, &meilisearch.SearchRequest{
		Limit:                limit,
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}

	// Round-trip the hits so the decode does not depend on the client's hit type.
	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, fmt.Errorf("decode hits: %w", err)
	}
	var hits []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &hits); err != nil {
		return nil, fmt.Errorf("decode hits: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(hits))
	for _, h := range hits {
		id, err := uuid.Parse(h.ID)
		if err != nil {
			s.logger.Warn("skipping search hit with bad id", zap.String("id", h.ID))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func strPtr(s string) *string {
	return &s
}
