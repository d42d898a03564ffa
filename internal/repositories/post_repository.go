package repositories

import (
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uuid.UUID) (*models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPostsByUserID(userID uuid.UUID) ([]models.Post, error)
	GetPostsByUserIDs(userIDs []uuid.UUID) ([]models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uuid.UUID) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return translate(r.db.Create(post).Error, "post", post.ID.String())
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, translate(err, "post", id.String())
	}
	return &post, nil
}

// GetAllPosts retrieves all posts, newest first
func (r *PostgresPostRepository) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, translate(err, "post", "")
	}
	return posts, nil
}

// GetPostsByUserID retrieves all posts by a single author, newest first
func (r *PostgresPostRepository) GetPostsByUserID(userID uuid.UUID) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, translate(err, "post", "")
	}
	return posts, nil
}

// GetPostsByUserIDs retrieves posts authored by any of the given users,
// newest first. An empty id set yields an empty result.
func (r *PostgresPostRepository) GetPostsByUserIDs(userIDs []uuid.UUID) ([]models.Post, error) {
	if len(userIDs) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	if err := r.db.Where("user_id IN ?", userIDs).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, translate(err, "post", "")
	}
	return posts, nil
}

// UpdatePost updates an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return translate(r.db.Save(post).Error, "post", post.ID.String())
}

// DeletePost deletes a post by ID. Comments and likes on the post go with
// it via the FK cascade rules; notifications keep their row with post_id
// nulled out.
func (r *PostgresPostRepository) DeletePost(id uuid.UUID) error {
	return translate(r.db.Delete(&models.Post{}, "id = ?", id).Error, "post", id.String())
}
