package models

import (
	"testing"

	"server/config"
	"server/db"
)

// initTestDB gives each test a fresh private in-memory database.
// db.Init enforces foreign keys, which the cascade tests rely on.
func initTestDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file::memory:"
	db.Init()
	Init()
}

func mustUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, username, username+"@example.com", "secret")
	if err != nil {
		t.Fatalf("UserCreate(%q): %v", username, err)
	}
	return u
}

func mustPost(t *testing.T, userID uint64, text string) Post {
	t.Helper()
	p := Post{UserID: userID, Text: text}
	if err := db.Instance.Create(&p).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var cnt int64
	if err := db.Instance.Model(model).Count(&cnt).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return cnt
}

func TestUserLogin(t *testing.T) {
	initTestDB(t)
	mustUser(t, "leo")

	if _, ok := UserLogin("leo", "wrong"); ok {
		t.Error("login succeeded with a wrong password")
	}
	if _, ok := UserLogin("nobody", "secret"); ok {
		t.Error("login succeeded for a missing user")
	}
	u, ok := UserLogin("leo", "secret")
	if !ok || u.Username != "leo" {
		t.Errorf("UserLogin = %+v, %v; want leo, true", u, ok)
	}
}

func TestPostOfAuthor(t *testing.T) {
	initTestDB(t)
	leo := mustUser(t, "leo")
	mustUser(t, "mia")
	post := mustPost(t, leo.ID, "hello")

	if _, err := PostOfAuthor("leo", post.ID); err != nil {
		t.Errorf("PostOfAuthor(leo, %d): %v", post.ID, err)
	}
	// Mismatched pair behaves like a missing record
	if _, err := PostOfAuthor("mia", post.ID); err == nil {
		t.Error("PostOfAuthor accepted a mismatched author")
	}
}

func TestAuthorDeleteCascades(t *testing.T) {
	initTestDB(t)
	leo := mustUser(t, "leo")
	mia := mustUser(t, "mia")
	post := mustPost(t, leo.ID, "soon gone")
	comment := Comment{PostID: post.ID, UserID: mia.ID, Text: "nice"}
	if err := db.Instance.Create(&comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := db.Instance.Delete(&User{}, leo.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if got := countRows(t, &Post{}); got != 0 {
		t.Errorf("posts after author delete = %d, want 0", got)
	}
	if got := countRows(t, &Comment{}); got != 0 {
		t.Errorf("comments after author delete = %d, want 0", got)
	}
}

func TestGroupDeleteKeepsPosts(t *testing.T) {
	initTestDB(t)
	leo := mustUser(t, "leo")
	group := Group{Title: "Cats", Slug: "cats", Description: "cat talk"}
	if err := db.Instance.Create(&group).Error; err != nil {
		t.Fatalf("create group: %v", err)
	}
	post := Post{UserID: leo.ID, GroupID: &group.ID, Text: "meow"}
	if err := db.Instance.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := db.Instance.Delete(&Group{}, group.ID).Error; err != nil {
		t.Fatalf("delete group: %v", err)
	}
	var kept Post
	if err := db.Instance.First(&kept, post.ID).Error; err != nil {
		t.Fatalf("post should survive group delete: %v", err)
	}
	if kept.GroupID != nil {
		t.Errorf("post group after group delete = %v, want nil", *kept.GroupID)
	}
}
