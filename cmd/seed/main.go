package main

import (
	"log"

	likeModel "microblog/internal/domain/like/model"
	postModel "microblog/internal/domain/post/model"
	replyModel "microblog/internal/domain/reply/model"
	userModel "microblog/internal/domain/user/model"
	"microblog/internal/pkg/config"
	"microblog/pkg/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func upsertUser(db *gorm.DB, email, username, displayName, password string) (*userModel.User, error) {
	var user userModel.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = userModel.User{
		Email:       email,
		Username:    username,
		DisplayName: displayName,
		Password:    string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	log.Println("Seeding demo data...")

	alice, err := upsertUser(db, "alice@example.com", "alice", "Alice", "password123")
	if err != nil {
		log.Fatal(err)
	}
	bob, err := upsertUser(db, "bob@example.com", "bob", "Bob", "password123")
	if err != nil {
		log.Fatal(err)
	}

	// 已有帖子时跳过，保证脚本可重复执行
	var postCount int64
	if err := db.Model(&postModel.Post{}).Count(&postCount).Error; err != nil {
		log.Fatal(err)
	}
	if postCount == 0 {
		p1 := postModel.Post{Content: "Hello Microblog! 👋", AuthorID: alice.ID}
		p2 := postModel.Post{Content: "Loving this lightweight feed.", AuthorID: bob.ID}
		p3 := postModel.Post{Content: "Short posts, fast pages.", AuthorID: alice.ID}
		for _, p := range []*postModel.Post{&p1, &p2, &p3} {
			if err := db.Create(p).Error; err != nil {
				log.Fatal(err)
			}
		}

		replies := []replyModel.Reply{
			{Content: "Welcome!", PostID: p1.ID, AuthorID: bob.ID},
			{Content: "Agreed!", PostID: p3.ID, AuthorID: bob.ID},
		}
		for i := range replies {
			if err := db.Create(&replies[i]).Error; err != nil {
				log.Fatal(err)
			}
		}

		likes := []*likeModel.Like{
			likeModel.NewLike(alice.ID, likeModel.PostTarget(p2.ID)),
			likeModel.NewLike(bob.ID, likeModel.PostTarget(p1.ID)),
		}
		for _, l := range likes {
			if err := db.Create(l).Error; err != nil {
				log.Fatal(err)
			}
		}
	}

	log.Println("Seed complete. You can login as:")
	log.Println("- alice@example.com / password123")
	log.Println("- bob@example.com   / password123")
}
