package newstest

import (
	"time"

	"newsboard/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateTime, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// Seeded returns a store loaded with a fixed dataset:
//
//   - topics mitch, cats and paper; paper has no articles
//   - users butter_bridge, icellusedkars, rogersop and lurker
//   - seven articles: six on mitch and one on cats; article 1 has 100 votes
//     and eleven comments, article 2 has none
func Seeded() *Store {
	s := New()

	s.AddTopic(models.Topic{Slug: "mitch", Description: "The man, the Mitch, the legend"})
	s.AddTopic(models.Topic{Slug: "cats", Description: "Not dogs"})
	s.AddTopic(models.Topic{Slug: "paper", Description: "what books are made of"})

	s.AddUser(models.User{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/jonny.jpg"})
	s.AddUser(models.User{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/sam.jpg"})
	s.AddUser(models.User{Username: "rogersop", Name: "paul", AvatarURL: "https://example.com/paul.jpg"})
	s.AddUser(models.User{Username: "lurker", Name: "do_nothing", AvatarURL: "https://example.com/lurker.png"})

	articles := []models.Article{
		{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: day("2020-07-09 20:11:00"), Votes: 100},
		{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell.", CreatedAt: day("2020-10-16 05:03:00")},
		{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: day("2020-11-03 09:12:00")},
		{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch.", CreatedAt: day("2020-05-06 01:14:00")},
		{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us.", CreatedAt: day("2020-08-03 13:14:00")},
		{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: day("2020-10-18 01:00:00")},
		{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: day("2020-01-07 14:08:00")},
	}
	for _, a := range articles {
		s.AddArticle(a)
	}

	comments := []models.Comment{
		{Body: "Oh, I've got compassion running out of my nose, pal!", ArticleID: 1, Author: "butter_bridge", Votes: 16, CreatedAt: day("2020-04-06 12:17:00")},
		{Body: "The beautiful thing about treasure is that it exists.", ArticleID: 1, Author: "butter_bridge", Votes: 14, CreatedAt: day("2020-10-31 03:03:00")},
		{Body: "Replacing the quiet elegance of the dark suit and tie.", ArticleID: 1, Author: "icellusedkars", Votes: 100, CreatedAt: day("2020-03-01 01:13:00")},
		{Body: "I carry a log. Is it funny to you?", ArticleID: 1, Author: "icellusedkars", Votes: -100, CreatedAt: day("2020-02-23 12:01:00")},
		{Body: "I hate streaming noses", ArticleID: 1, Author: "icellusedkars", CreatedAt: day("2020-11-03 21:00:00")},
		{Body: "git push origin master", ArticleID: 3, Author: "icellusedkars", CreatedAt: day("2020-06-20 07:24:00")},
		{Body: "Ambidextrous marsupial", ArticleID: 3, Author: "icellusedkars", CreatedAt: day("2020-09-19 23:10:00")},
		{Body: "What do you see? I have no idea where this will lead us.", ArticleID: 5, Author: "icellusedkars", Votes: 16, CreatedAt: day("2020-06-15 10:25:00")},
		{Body: "Lobster pot", ArticleID: 1, Author: "icellusedkars", CreatedAt: day("2020-05-15 20:19:00")},
		{Body: "Delicious crackerbreads", ArticleID: 1, Author: "icellusedkars", CreatedAt: day("2020-04-14 20:19:00")},
		{Body: "Superficially charming", ArticleID: 1, Author: "icellusedkars", CreatedAt: day("2020-01-01 03:08:00")},
		{Body: "Massive intercranial brain haemorrhage", ArticleID: 1, Author: "icellusedkars", CreatedAt: day("2020-03-02 07:10:00")},
		{Body: "Fruit pastilles", ArticleID: 1, Author: "icellusedkars", CreatedAt: day("2020-06-15 17:00:00")},
		{Body: "This morning, I showered for nine minutes.", ArticleID: 1, Author: "lurker", CreatedAt: day("2020-07-21 00:20:00")},
	}
	for _, c := range comments {
		s.AddComment(c)
	}

	return s
}
