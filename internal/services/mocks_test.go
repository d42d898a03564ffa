package services

// In-memory repository fakes. The write paths mirror the storage-level
// guarantees the real repositories get from the schema: composite unique
// indexes reject duplicates with Conflict, and a notification passed to a
// create method commits with the trigger row or not at all.

import (
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperror.Conflict("duplicate key")
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetUserByID(id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id.String())
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetUserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

func (m *mockUserRepo) UpdateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return apperror.NotFound("user", user.ID.String())
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) add(displayName, email string) *models.User {
	u := &models.User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}
	m.mu.Lock()
	m.users[u.ID] = u
	m.mu.Unlock()
	return u
}

type mockPostRepo struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*models.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[uuid.UUID]*models.Post)}
}

func (m *mockPostRepo) CreatePost(post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *post
	m.posts[post.ID] = &cp
	return nil
}

func (m *mockPostRepo) GetPostByID(id uuid.UUID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, apperror.NotFound("post", id.String())
	}
	cp := *p
	return &cp, nil
}

func (m *mockPostRepo) sortedDesc(filter func(*models.Post) bool) []models.Post {
	var out []models.Post
	for _, p := range m.posts {
		if filter(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *mockPostRepo) GetAllPosts() ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedDesc(func(*models.Post) bool { return true }), nil
}

func (m *mockPostRepo) GetPostsByUserID(userID uuid.UUID) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedDesc(func(p *models.Post) bool { return p.UserID == userID }), nil
}

func (m *mockPostRepo) GetPostsByUserIDs(userIDs []uuid.UUID) ([]models.Post, error) {
	if len(userIDs) == 0 {
		return []models.Post{}, nil
	}
	set := make(map[uuid.UUID]bool, len(userIDs))
	for _, id := range userIDs {
		set[id] = true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedDesc(func(p *models.Post) bool { return set[p.UserID] }), nil
}

func (m *mockPostRepo) UpdatePost(post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[post.ID]; !ok {
		return apperror.NotFound("post", post.ID.String())
	}
	cp := *post
	m.posts[post.ID] = &cp
	return nil
}

func (m *mockPostRepo) DeletePost(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, id)
	return nil
}

type likeKey struct {
	postID uuid.UUID
	userID uuid.UUID
}

type mockLikeRepo struct {
	mu            sync.Mutex
	likes         map[likeKey]*models.Like
	notifications []*models.Notification
	userLookup    map[uuid.UUID]models.User
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{
		likes:      make(map[likeKey]*models.Like),
		userLookup: make(map[uuid.UUID]models.User),
	}
}

func (m *mockLikeRepo) CreateLike(like *models.Like, notif *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := likeKey{postID: like.PostID, userID: like.UserID}
	if _, exists := m.likes[key]; exists {
		return apperror.Conflict("duplicate key")
	}
	cp := *like
	m.likes[key] = &cp
	if notif != nil {
		m.notifications = append(m.notifications, notif)
	}
	return nil
}

func (m *mockLikeRepo) DeleteLike(postID, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := likeKey{postID: postID, userID: userID}
	if _, exists := m.likes[key]; !exists {
		return apperror.NotFound("like", postID.String())
	}
	delete(m.likes, key)
	return nil
}

func (m *mockLikeRepo) GetLikesCountByPostID(postID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for key := range m.likes {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

func (m *mockLikeRepo) HasUserLikedPost(postID, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.likes[likeKey{postID: postID, userID: userID}]
	return ok, nil
}

func (m *mockLikeRepo) GetUsersWhoLikedPost(postID uuid.UUID) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []models.User
	for key := range m.likes {
		if key.postID == postID {
			if u, ok := m.userLookup[key.userID]; ok {
				users = append(users, u)
			}
		}
	}
	return users, nil
}

type mockCommentRepo struct {
	mu            sync.Mutex
	comments      map[uuid.UUID]*models.Comment
	notifications []*models.Notification
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[uuid.UUID]*models.Comment)}
}

func (m *mockCommentRepo) CreateComment(comment *models.Comment, notif *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *comment
	m.comments[comment.ID] = &cp
	if notif != nil {
		m.notifications = append(m.notifications, notif)
	}
	return nil
}

func (m *mockCommentRepo) GetCommentByID(id uuid.UUID) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, apperror.NotFound("comment", id.String())
	}
	cp := *c
	return &cp, nil
}

func (m *mockCommentRepo) GetCommentsByPostID(postID uuid.UUID) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockCommentRepo) CountByPostID(postID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, c := range m.comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (m *mockCommentRepo) UpdateComment(comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[comment.ID]; !ok {
		return apperror.NotFound("comment", comment.ID.String())
	}
	cp := *comment
	m.comments[comment.ID] = &cp
	return nil
}

func (m *mockCommentRepo) DeleteComment(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.comments, id)
	return nil
}

type commentLikeKey struct {
	commentID uuid.UUID
	userID    uuid.UUID
}

type mockCommentLikeRepo struct {
	mu            sync.Mutex
	likes         map[commentLikeKey]*models.CommentLike
	notifications []*models.Notification
	userLookup    map[uuid.UUID]models.User
}

func newMockCommentLikeRepo() *mockCommentLikeRepo {
	return &mockCommentLikeRepo{
		likes:      make(map[commentLikeKey]*models.CommentLike),
		userLookup: make(map[uuid.UUID]models.User),
	}
}

func (m *mockCommentLikeRepo) CreateCommentLike(like *models.CommentLike, notif *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := commentLikeKey{commentID: like.CommentID, userID: like.UserID}
	if _, exists := m.likes[key]; exists {
		return apperror.Conflict("duplicate key")
	}
	cp := *like
	m.likes[key] = &cp
	if notif != nil {
		m.notifications = append(m.notifications, notif)
	}
	return nil
}

func (m *mockCommentLikeRepo) DeleteCommentLike(commentID, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := commentLikeKey{commentID: commentID, userID: userID}
	if _, exists := m.likes[key]; !exists {
		return apperror.NotFound("comment like", commentID.String())
	}
	delete(m.likes, key)
	return nil
}

func (m *mockCommentLikeRepo) GetLikesCount(commentID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for key := range m.likes {
		if key.commentID == commentID {
			count++
		}
	}
	return count, nil
}

func (m *mockCommentLikeRepo) HasUserLikedComment(commentID, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.likes[commentLikeKey{commentID: commentID, userID: userID}]
	return ok, nil
}

func (m *mockCommentLikeRepo) GetUsersWhoLikedComment(commentID uuid.UUID) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []models.User
	for key := range m.likes {
		if key.commentID == commentID {
			if u, ok := m.userLookup[key.userID]; ok {
				users = append(users, u)
			}
		}
	}
	return users, nil
}

type followKey struct {
	followerID uuid.UUID
	followedID uuid.UUID
}

type mockFollowRepo struct {
	mu            sync.Mutex
	edges         map[followKey]*models.Follow
	notifications []*models.Notification
	userLookup    map[uuid.UUID]models.User
}

func newMockFollowRepo() *mockFollowRepo {
	return &mockFollowRepo{
		edges:      make(map[followKey]*models.Follow),
		userLookup: make(map[uuid.UUID]models.User),
	}
}

func (m *mockFollowRepo) CreateFollow(follow *models.Follow, notif *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if follow.FollowerID == follow.FollowedID {
		return apperror.ValidationFailed("followed_id", "check constraint violated")
	}
	key := followKey{followerID: follow.FollowerID, followedID: follow.FollowedID}
	if _, exists := m.edges[key]; exists {
		return apperror.Conflict("duplicate key")
	}
	cp := *follow
	m.edges[key] = &cp
	if notif != nil {
		m.notifications = append(m.notifications, notif)
	}
	return nil
}

func (m *mockFollowRepo) DeleteFollow(followerID, followedID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := followKey{followerID: followerID, followedID: followedID}
	if _, exists := m.edges[key]; !exists {
		return apperror.NotFound("follow", followedID.String())
	}
	delete(m.edges, key)
	return nil
}

func (m *mockFollowRepo) IsFollowing(followerID, followedID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.edges[followKey{followerID: followerID, followedID: followedID}]
	return ok, nil
}

func (m *mockFollowRepo) GetFollowers(userID uuid.UUID) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []models.User
	for key := range m.edges {
		if key.followedID == userID {
			if u, ok := m.userLookup[key.followerID]; ok {
				users = append(users, u)
			}
		}
	}
	return users, nil
}

func (m *mockFollowRepo) GetFollowing(userID uuid.UUID) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []models.User
	for key := range m.edges {
		if key.followerID == userID {
			if u, ok := m.userLookup[key.followedID]; ok {
				users = append(users, u)
			}
		}
	}
	return users, nil
}

func (m *mockFollowRepo) GetFollowersCount(userID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for key := range m.edges {
		if key.followedID == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockFollowRepo) GetFollowingCount(userID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for key := range m.edges {
		if key.followerID == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockFollowRepo) GetFollowingIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uuid.UUID
	for key := range m.edges {
		if key.followerID == userID {
			ids = append(ids, key.followedID)
		}
	}
	return ids, nil
}

type mockNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) GetByRecipientID(recipientID uuid.UUID) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Notification
	for _, n := range m.notifications {
		if n.UserID == recipientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockNotificationRepo) GetUnreadCount(recipientID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, n := range m.notifications {
		if n.UserID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) MarkAllAsRead(recipientID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].UserID == recipientID {
			m.notifications[i].IsRead = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) add(n models.Notification) {
	m.mu.Lock()
	m.notifications = append(m.notifications, n)
	m.mu.Unlock()
}

// mockFileStorage records image operations without touching disk
type mockFileStorage struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
}

func (m *mockFileStorage) SaveImage(r io.Reader, originalName string, size int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name := uuid.New().String() + ".jpg"
	m.saved = append(m.saved, name)
	return name, nil
}

func (m *mockFileStorage) DeleteImage(fileName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, fileName)
}

func (m *mockFileStorage) Open(fileName string) (io.ReadCloser, error) {
	return nil, io.ErrUnexpectedEOF
}
