// Command seeder loads a small starter corpus into the knowledge base.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hoclieu/tracuu/internal/config"
	dbRedis "github.com/hoclieu/tracuu/internal/db/redis"
	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
	logpkg "github.com/hoclieu/tracuu/internal/logger"
	categoryrepo "github.com/hoclieu/tracuu/internal/repository/category"
	sectionrepo "github.com/hoclieu/tracuu/internal/repository/section"
	tagrepo "github.com/hoclieu/tracuu/internal/repository/tag"
	topicrepo "github.com/hoclieu/tracuu/internal/repository/topic"
)

type seedSection struct {
	heading     string
	content     string
	codeSnippet string
	language    string
}

type seedTopic struct {
	title      string
	definition string
	category   string
	tags       []string
	sections   []seedSection
}

var seedCategories = []struct {
	name string
	slug string
}{
	{"Lập trình hướng đối tượng", "lap-trinh-huong-doi-tuong"},
	{"Cấu trúc dữ liệu", "cau-truc-du-lieu"},
}

var seedTags = []struct {
	name        string
	slug        string
	description string
}{
	{"python", "python", "Ví dụ minh họa bằng Python"},
	{"java", "java", "Ví dụ minh họa bằng Java"},
	{"co-ban", "co-ban", "Khái niệm nền tảng"},
}

var seedTopics = []seedTopic{
	{
		title:      "Kế thừa",
		definition: "Cơ chế cho phép một lớp nhận thuộc tính và phương thức từ lớp khác",
		category:   "lap-trinh-huong-doi-tuong",
		tags:       []string{"python", "co-ban"},
		sections: []seedSection{
			{
				heading:     "Ví dụ kế thừa đơn",
				content:     "Lớp Dog kế thừa lớp Animal và dùng lại phương thức speak.",
				codeSnippet: "class Animal:\n    def speak(self):\n        return \"...\"\n\nclass Dog(Animal):\n    pass",
				language:    "python",
			},
		},
	},
	{
		title:      "Đa hình",
		definition: "Khả năng các đối tượng khác lớp phản hồi cùng một thông điệp theo cách riêng",
		category:   "lap-trinh-huong-doi-tuong",
		tags:       []string{"python", "co-ban"},
		sections: []seedSection{
			{
				heading: "Ghi đè phương thức",
				content: "Mỗi lớp con định nghĩa lại speak theo cách riêng của nó.",
			},
		},
	},
	{
		title:      "Đóng gói",
		definition: "Che giấu trạng thái bên trong đối tượng và chỉ lộ ra giao diện công khai",
		category:   "lap-trinh-huong-doi-tuong",
		tags:       []string{"java", "co-ban"},
	},
	{
		title:      "Bảng băm",
		definition: "Cấu trúc dữ liệu ánh xạ khóa sang giá trị với thời gian tra cứu trung bình O(1)",
		category:   "cau-truc-du-lieu",
		tags:       []string{"co-ban"},
	},
}

func main() {
	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	prefix := cfg.Storage.KeyPrefix
	topics := topicrepo.New(store).WithPrefix(prefix)
	sections := sectionrepo.New(store).WithPrefix(prefix)
	categories := categoryrepo.New(store).WithPrefix(prefix)
	tags := tagrepo.New(store).WithPrefix(prefix)

	categoryIDs := make(map[string]int, len(seedCategories))
	for _, sc := range seedCategories {
		c, err := domcategory.New(sc.name, sc.slug)
		if err != nil {
			logger.Fatal("Invalid seed category", zap.String("name", sc.name), zap.Error(err))
		}
		created, err := categories.Create(ctx, c)
		if err != nil {
			logger.Fatal("Failed to seed category", zap.String("name", sc.name), zap.Error(err))
		}
		categoryIDs[created.Slug()] = created.ID()
		logger.Info("Seeded category", zap.Int("id", created.ID()), zap.String("slug", created.Slug()))
	}

	tagIDs := make(map[string]int, len(seedTags))
	for _, st := range seedTags {
		tg, err := domtag.New(st.name, st.slug, st.description)
		if err != nil {
			logger.Fatal("Invalid seed tag", zap.String("name", st.name), zap.Error(err))
		}
		created, err := tags.Create(ctx, tg)
		if err != nil {
			logger.Fatal("Failed to seed tag", zap.String("name", st.name), zap.Error(err))
		}
		tagIDs[created.Slug()] = created.ID()
		logger.Info("Seeded tag", zap.Int("id", created.ID()), zap.String("slug", created.Slug()))
	}

	for _, st := range seedTopics {
		t, err := domtopic.New(st.title, st.definition, categoryIDs[st.category])
		if err != nil {
			logger.Fatal("Invalid seed topic", zap.String("title", st.title), zap.Error(err))
		}
		created, err := topics.Create(ctx, t)
		if err != nil {
			logger.Fatal("Failed to seed topic", zap.String("title", st.title), zap.Error(err))
		}
		for _, slug := range st.tags {
			if err := topics.AttachTag(ctx, created.ID(), tagIDs[slug]); err != nil {
				logger.Fatal("Failed to attach tag", zap.String("tag", slug), zap.Error(err))
			}
		}
		for i, ss := range st.sections {
			sec, err := domsection.New(created.ID(), i, ss.heading, ss.content, "", ss.codeSnippet, ss.language)
			if err != nil {
				logger.Fatal("Invalid seed section", zap.String("heading", ss.heading), zap.Error(err))
			}
			if _, err := sections.Create(ctx, sec); err != nil {
				logger.Fatal("Failed to seed section", zap.String("heading", ss.heading), zap.Error(err))
			}
		}
		logger.Info("Seeded topic",
			zap.Int("id", created.ID()),
			zap.String("title", created.Title()),
			zap.Int("sections", len(st.sections)),
		)
	}

	logger.Info("Seeding complete",
		zap.Int("categories", len(seedCategories)),
		zap.Int("tags", len(seedTags)),
		zap.Int("topics", len(seedTopics)),
	)
}
