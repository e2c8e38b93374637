package post

import (
	"errors"
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ListPosts retrieves all posts.
func (s *DefaultPostService) ListPosts() ([]models.Post, error) {
	return s.Repo.GetAll()
}

// GetPost retrieves a post by its document ID.
func (s *DefaultPostService) GetPost(id primitive.ObjectID) (*models.Post, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch post %s: %w", id.Hex(), err)
	}
	return p, nil
}

// CreatePost stores a new post owned by the author.
func (s *DefaultPostService) CreatePost(in models.PostInput, authorID primitive.ObjectID) (*models.Post, error) {
	published := true
	if in.Published != nil {
		published = *in.Published
	}

	p := &models.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: published,
		UserID:    authorID,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	utils.GetLogger().Info("Post created",
		zap.String("id", p.ID.Hex()), zap.String("authorId", authorID.Hex()))
	return p, nil
}

// UpdatePost applies a partial update to the owner's post.
func (s *DefaultPostService) UpdatePost(id primitive.ObjectID, in models.PostUpdate, actorID primitive.ObjectID) (*models.Post, error) {
	existing, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != actorID {
		return nil, ErrNotOwner
	}

	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Published != nil {
		fields["published"] = *in.Published
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.Repo.Update(id, fields); err != nil {
		return nil, err
	}
	return s.GetPost(id)
}

// DeletePost removes the owner's post.
func (s *DefaultPostService) DeletePost(id primitive.ObjectID, actorID primitive.ObjectID) error {
	existing, err := s.GetPost(id)
	if err != nil {
		return err
	}
	if existing.UserID != actorID {
		return ErrNotOwner
	}

	deleted, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
