package handlers

// In-memory repository fakes for exercising handlers through real
// services. Write paths mirror the storage-level guarantees: composite
// unique keys reject duplicates with Conflict, absent rows are NotFound.

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAuthedContext builds an echo context carrying the claims the JWT
// middleware would have set for actorID.
func newAuthedContext(method, target string, actorID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: actorID})
	return c, rec
}

type stubUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (s *stubUserRepo) add(displayName string) *models.User {
	u := &models.User{
		ID:          uuid.New(),
		Email:       displayName + "@example.com",
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}
	s.users[u.ID] = u
	return u
}

func (s *stubUserRepo) CreateUser(user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) GetUserByID(id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id.String())
	}
	return u, nil
}

func (s *stubUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

func (s *stubUserRepo) UpdateUser(user *models.User) error {
	s.users[user.ID] = user
	return nil
}

type stubPostRepo struct {
	posts map[uuid.UUID]*models.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[uuid.UUID]*models.Post)}
}

func (s *stubPostRepo) add(ownerID uuid.UUID) *models.Post {
	p := &models.Post{
		ID:        uuid.New(),
		UserID:    ownerID,
		Content:   "post under test",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	s.posts[p.ID] = p
	return p
}

func (s *stubPostRepo) CreatePost(post *models.Post) error {
	s.posts[post.ID] = post
	return nil
}

func (s *stubPostRepo) GetPostByID(id uuid.UUID) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, apperror.NotFound("post", id.String())
	}
	return p, nil
}

func (s *stubPostRepo) GetAllPosts() ([]models.Post, error) {
	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPostRepo) GetPostsByUserID(userID uuid.UUID) ([]models.Post, error) {
	var out []models.Post
	for _, p := range s.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubPostRepo) GetPostsByUserIDs(userIDs []uuid.UUID) ([]models.Post, error) {
	var out []models.Post
	for _, id := range userIDs {
		for _, p := range s.posts {
			if p.UserID == id {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (s *stubPostRepo) UpdatePost(post *models.Post) error {
	s.posts[post.ID] = post
	return nil
}

func (s *stubPostRepo) DeletePost(id uuid.UUID) error {
	delete(s.posts, id)
	return nil
}

type likePair struct {
	postID uuid.UUID
	userID uuid.UUID
}

type stubLikeRepo struct {
	likes         map[likePair]*models.Like
	notifications []*models.Notification
}

func newStubLikeRepo() *stubLikeRepo {
	return &stubLikeRepo{likes: make(map[likePair]*models.Like)}
}

func (s *stubLikeRepo) CreateLike(like *models.Like, notif *models.Notification) error {
	key := likePair{postID: like.PostID, userID: like.UserID}
	if _, ok := s.likes[key]; ok {
		return apperror.Conflict("like already exists")
	}
	s.likes[key] = like
	if notif != nil {
		s.notifications = append(s.notifications, notif)
	}
	return nil
}

func (s *stubLikeRepo) DeleteLike(postID, userID uuid.UUID) error {
	key := likePair{postID: postID, userID: userID}
	if _, ok := s.likes[key]; !ok {
		return apperror.NotFound("like", postID.String())
	}
	delete(s.likes, key)
	return nil
}

func (s *stubLikeRepo) GetLikesCountByPostID(postID uuid.UUID) (int64, error) {
	var n int64
	for key := range s.likes {
		if key.postID == postID {
			n++
		}
	}
	return n, nil
}

func (s *stubLikeRepo) HasUserLikedPost(postID, userID uuid.UUID) (bool, error) {
	_, ok := s.likes[likePair{postID: postID, userID: userID}]
	return ok, nil
}

func (s *stubLikeRepo) GetUsersWhoLikedPost(postID uuid.UUID) ([]models.User, error) {
	return nil, nil
}

type stubCommentRepo struct {
	comments      map[uuid.UUID]*models.Comment
	notifications []*models.Notification
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[uuid.UUID]*models.Comment)}
}

func (s *stubCommentRepo) add(postID, userID uuid.UUID) *models.Comment {
	c := &models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Content:   "comment under test",
		CreatedAt: time.Now().UTC(),
	}
	s.comments[c.ID] = c
	return c
}

func (s *stubCommentRepo) CreateComment(comment *models.Comment, notif *models.Notification) error {
	s.comments[comment.ID] = comment
	if notif != nil {
		s.notifications = append(s.notifications, notif)
	}
	return nil
}

func (s *stubCommentRepo) GetCommentByID(id uuid.UUID) (*models.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, apperror.NotFound("comment", id.String())
	}
	return c, nil
}

func (s *stubCommentRepo) GetCommentsByPostID(postID uuid.UUID) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *stubCommentRepo) CountByPostID(postID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (s *stubCommentRepo) UpdateComment(comment *models.Comment) error {
	s.comments[comment.ID] = comment
	return nil
}

func (s *stubCommentRepo) DeleteComment(id uuid.UUID) error {
	delete(s.comments, id)
	return nil
}

type commentLikePair struct {
	commentID uuid.UUID
	userID    uuid.UUID
}

type stubCommentLikeRepo struct {
	likes         map[commentLikePair]*models.CommentLike
	notifications []*models.Notification
}

func newStubCommentLikeRepo() *stubCommentLikeRepo {
	return &stubCommentLikeRepo{likes: make(map[commentLikePair]*models.CommentLike)}
}

func (s *stubCommentLikeRepo) CreateCommentLike(like *models.CommentLike, notif *models.Notification) error {
	key := commentLikePair{commentID: like.CommentID, userID: like.UserID}
	if _, ok := s.likes[key]; ok {
		return apperror.Conflict("comment like already exists")
	}
	s.likes[key] = like
	if notif != nil {
		s.notifications = append(s.notifications, notif)
	}
	return nil
}

func (s *stubCommentLikeRepo) DeleteCommentLike(commentID, userID uuid.UUID) error {
	key := commentLikePair{commentID: commentID, userID: userID}
	if _, ok := s.likes[key]; !ok {
		return apperror.NotFound("comment like", commentID.String())
	}
	delete(s.likes, key)
	return nil
}

func (s *stubCommentLikeRepo) GetLikesCount(commentID uuid.UUID) (int64, error) {
	var n int64
	for key := range s.likes {
		if key.commentID == commentID {
			n++
		}
	}
	return n, nil
}

func (s *stubCommentLikeRepo) HasUserLikedComment(commentID, userID uuid.UUID) (bool, error) {
	_, ok := s.likes[commentLikePair{commentID: commentID, userID: userID}]
	return ok, nil
}

func (s *stubCommentLikeRepo) GetUsersWhoLikedComment(commentID uuid.UUID) ([]models.User, error) {
	return nil, nil
}

type followPair struct {
	followerID uuid.UUID
	followedID uuid.UUID
}

type stubFollowRepo struct {
	edges         map[followPair]*models.Follow
	notifications []*models.Notification
}

func newStubFollowRepo() *stubFollowRepo {
	return &stubFollowRepo{edges: make(map[followPair]*models.Follow)}
}

func (s *stubFollowRepo) CreateFollow(follow *models.Follow, notif *models.Notification) error {
	if follow.FollowerID == follow.FollowedID {
		return apperror.ValidationFailed("followedId", "follow violates a check constraint")
	}
	key := followPair{followerID: follow.FollowerID, followedID: follow.FollowedID}
	if _, ok := s.edges[key]; ok {
		return apperror.Conflict("follow already exists")
	}
	s.edges[key] = follow
	if notif != nil {
		s.notifications = append(s.notifications, notif)
	}
	return nil
}

func (s *stubFollowRepo) DeleteFollow(followerID, followedID uuid.UUID) error {
	key := followPair{followerID: followerID, followedID: followedID}
	if _, ok := s.edges[key]; !ok {
		return apperror.NotFound("follow", followedID.String())
	}
	delete(s.edges, key)
	return nil
}

func (s *stubFollowRepo) IsFollowing(followerID, followedID uuid.UUID) (bool, error) {
	_, ok := s.edges[followPair{followerID: followerID, followedID: followedID}]
	return ok, nil
}

func (s *stubFollowRepo) GetFollowers(userID uuid.UUID) ([]models.User, error) {
	return nil, nil
}

func (s *stubFollowRepo) GetFollowing(userID uuid.UUID) ([]models.User, error) {
	return nil, nil
}

func (s *stubFollowRepo) GetFollowersCount(userID uuid.UUID) (int64, error) {
	var n int64
	for key := range s.edges {
		if key.followedID == userID {
			n++
		}
	}
	return n, nil
}

func (s *stubFollowRepo) GetFollowingCount(userID uuid.UUID) (int64, error) {
	var n int64
	for key := range s.edges {
		if key.followerID == userID {
			n++
		}
	}
	return n, nil
}

func (s *stubFollowRepo) GetFollowingIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for key := range s.edges {
		if key.followerID == userID {
			out = append(out, key.followedID)
		}
	}
	return out, nil
}

type stubNotificationRepo struct {
	rows []models.Notification
}

func (s *stubNotificationRepo) add(recipientID uuid.UUID) {
	s.rows = append(s.rows, models.Notification{
		ID:        uuid.New(),
		UserID:    recipientID,
		Type:      models.NotificationLike,
		Message:   "someone liked your post",
		CreatedAt: time.Now().UTC(),
	})
}

func (s *stubNotificationRepo) GetByRecipientID(recipientID uuid.UUID) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range s.rows {
		if n.UserID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *stubNotificationRepo) GetUnreadCount(recipientID uuid.UUID) (int64, error) {
	var n int64
	for _, row := range s.rows {
		if row.UserID == recipientID && !row.IsRead {
			n++
		}
	}
	return n, nil
}

func (s *stubNotificationRepo) MarkAllAsRead(recipientID uuid.UUID) error {
	for i := range s.rows {
		if s.rows[i].UserID == recipientID {
			s.rows[i].IsRead = true
		}
	}
	return nil
}
