package community

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"smat.com/campusapi/internal/entity"
	"smat.com/campusapi/internal/modules/community/dto"
	"smat.com/campusapi/internal/modules/community/repository"
	search "smat.com/campusapi/internal/modules/search/service"
)

const (
	recentPostsLimit = 5
	searchLimit      = 20
)

type CommunityService interface {
	// AllPosts lists every post, or only those by writer when it is set.
	AllPosts(ctx context.Context, writer string) ([]dto.PostResponse, error)
	PostsByCategory(ctx context.Context, category entity.Category) ([]dto.PostResponse, error)
	RecentPosts(ctx context.Context) ([]dto.PostResponse, error)
	SearchPosts(ctx context.Context, keyword string) ([]dto.PostResponse, error)
}

type communityService struct {
	postRepo repository.PostRepository
	index    search.PostIndex
	loc      *time.Location
	logger   *zap.Logger
}

// NewCommunityService wires the board lookups. index may be nil, in which
// case search runs against the database.
func NewCommunityService(postRepo repository.PostRepository, index search.PostIndex, loc *time.Location, logger *zap.Logger) CommunityService {
	return &communityService{
		postRepo: postRepo,
		index:    index,
		loc:      loc,
		logger:   logger,
	}
}

func (s *communityService) AllPosts(ctx context.Context, writer string) ([]dto.PostResponse, error) {
	var (
		posts []*entity.Post
		err   error
	)
	if writer = strings.TrimSpace(writer); writer != "" {
		posts, err = s.postRepo.FindByWriter(ctx, writer)
	} else {
		posts, err = s.postRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	return s.toResponses(posts), nil
}

func (s *communityService) PostsByCategory(ctx context.Context, category entity.Category) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s posts: %w", category, err)
	}
	return s.toResponses(posts), nil
}

func (s *communityService) RecentPosts(ctx context.Context) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.FindRecent(ctx, recentPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent posts: %w", err)
	}
	return s.toResponses(posts), nil
}

func (s *communityService) SearchPosts(ctx context.Context, keyword string) ([]dto.PostResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []dto.PostResponse{}, nil
	}

	if s.index != nil {
		ids, err := s.index.SearchPostIDs(keyword, searchLimit)
		if err == nil {
			posts, err := s.postRepo.FindByIDs(ctx, ids)
			if err != nil {
				return nil, fmt.Errorf("failed to load search hits: %w", err)
			}
			return s.toResponses(posts), nil
		}
		s.logger.Warn("search index unavailable, falling back to database",
			zap.String("keyword", keyword),
			zap.Error(err),
		)
	}

	posts, err := s.postRepo.SearchByKeyword(ctx, keyword, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	return s.toResponses(posts), nil
}

func (s *communityService) toResponses(posts []*entity.Post) []dto.PostResponse {
	responses := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, dto.FromPost(p, s.loc))
	}
	return responses
}
