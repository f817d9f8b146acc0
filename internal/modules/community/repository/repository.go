package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smat.com/campusapi/internal/entity"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	FindAll(ctx context.Context) ([]*entity.Post, error)
	FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Post, error)
	FindByWriter(ctx context.Context, writer string) ([]*entity.Post, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Post, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error)
	SearchByKeyword(ctx context.Context, keyword string, limit int) ([]*entity.Post, error)
	Count(ctx context.Context) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	var posts []*entity.Post
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Post, error) {
	var posts []*entity.Post
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FindByWriter(ctx context.Context, writer string) ([]*entity.Post, error) {
	var posts []*entity.Post
	if err := r.db.WithContext(ctx).
		Where("writer = ?", writer).
		Order("id ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindRecent returns the newest posts first. Equal timestamps fall back to id
// so the order is stable.
func (r *postRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	var posts []*entity.Post
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByIDs returns posts in the order of ids. Unknown ids are dropped.
func (r *postRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error) {
	if len(ids) == 0 {
		return []*entity.Post{}, nil
	}

	var posts []*entity.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, err
	}

	postMap := make(map[uuid.UUID]*entity.Post, len(posts))
	for _, p := range posts {
		postMap[p.ID] = p
	}

	ordered := make([]*entity.Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := postMap[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchByKeyword matches keyword case-insensitively against title and
// content, newest first.
func (r *postRepository) SearchByKeyword(ctx context.Context, keyword string, limit int) ([]*entity.Post, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"

	var posts []*entity.Post
	if err := r.db.WithContext(ctx).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Post{}).Count(&count).Error
	return count, err
}
