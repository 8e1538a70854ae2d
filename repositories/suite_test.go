package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/models"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store *Store
	alice models.User
	bob   models.User
	carol models.User
	// tweets[i] was created at epoch + i minutes, except tweets[3] and
	// tweets[4] which share a timestamp.
	tweets []models.Tweet
}

func seed(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{store: NewStore(db)}

	for _, u := range []*models.User{&f.alice, &f.bob, &f.carol} {
		*u = models.User{HashedPassword: "x"}
	}
	f.alice.Username, f.bob.Username, f.carol.Username = "alice", "bob", "carol"
	for _, u := range []*models.User{&f.alice, &f.bob, &f.carol} {
		require.NoError(t, f.store.Users.Create(ctx, u))
	}

	rows := []struct {
		owner   uint
		content string
		minute  int
	}{
		{f.alice.ID, "Alice says hello", 0},
		{f.bob.ID, "bob's first post", 1},
		{f.alice.ID, "ALICE again", 2},
		{f.bob.ID, "100% sure", 3},
		{f.carol.ID, "carol_underscore", 3},
		{f.bob.ID, "bob closes", 5},
	}
	for _, s := range rows {
		tweet := models.Tweet{OwnerID: s.owner, Content: s.content, CreatedAt: epoch.Add(time.Duration(s.minute) * time.Minute)}
		require.NoError(t, f.store.Tweets.Create(ctx, &tweet))
		f.tweets = append(f.tweets, tweet)
	}
	return f
}

func ids(tweets []models.Tweet) []uint {
	out := make([]uint, len(tweets))
	for i, tw := range tweets {
		out[i] = tw.ID
	}
	return out
}

func runRepositorySuite(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	f := seed(t, db)
	tw := f.tweets
	page := func(skip, limit int, sort SortOrder) Page { return Page{Skip: skip, Limit: limit, Sort: sort} }

	t.Run("ordering and tie break", func(t *testing.T) {
		desc, err := f.store.Tweets.List(ctx, TweetFilter{}, page(0, 100, SortDesc))
		require.NoError(t, err)
		assert.Equal(t, []uint{tw[5].ID, tw[3].ID, tw[4].ID, tw[2].ID, tw[1].ID, tw[0].ID}, ids(desc))

		asc, err := f.store.Tweets.List(ctx, TweetFilter{}, page(0, 100, SortAsc))
		require.NoError(t, err)
		assert.Equal(t, []uint{tw[0].ID, tw[1].ID, tw[2].ID, tw[3].ID, tw[4].ID, tw[5].ID}, ids(asc))
	})

	t.Run("pagination windows", func(t *testing.T) {
		first, err := f.store.Tweets.List(ctx, TweetFilter{}, page(0, 2, SortDesc))
		require.NoError(t, err)
		second, err := f.store.Tweets.List(ctx, TweetFilter{}, page(2, 2, SortDesc))
		require.NoError(t, err)
		past, err := f.store.Tweets.List(ctx, TweetFilter{}, page(10, 2, SortDesc))
		require.NoError(t, err)

		assert.Equal(t, []uint{tw[5].ID, tw[3].ID}, ids(first))
		assert.Equal(t, []uint{tw[4].ID, tw[2].ID}, ids(second))
		assert.NotNil(t, past)
		assert.Empty(t, past)
	})

	t.Run("like counts default to zero", func(t *testing.T) {
		require.NoError(t, f.store.Likes.Create(ctx, &models.Like{UserID: f.alice.ID, TweetID: tw[1].ID}))
		require.NoError(t, f.store.Likes.Create(ctx, &models.Like{UserID: f.carol.ID, TweetID: tw[1].ID}))

		all, err := f.store.Tweets.List(ctx, TweetFilter{}, page(0, 100, SortAsc))
		require.NoError(t, err)
		counts := map[uint]int64{}
		for _, tweet := range all {
			counts[tweet.ID] = tweet.LikesCount
		}
		assert.Equal(t, int64(2), counts[tw[1].ID])
		assert.Equal(t, int64(0), counts[tw[0].ID])
		assert.Len(t, counts, len(tw))

		one, err := f.store.Tweets.FindWithLikes(ctx, tw[1].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), one.LikesCount)
		assert.Equal(t, tw[1].Content, one.Content)

		n, err := f.store.Likes.CountByTweet(ctx, tw[1].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("duplicate like violates constraint", func(t *testing.T) {
		err := f.store.Likes.Create(ctx, &models.Like{UserID: f.alice.ID, TweetID: tw[1].ID})
		assert.ErrorIs(t, err, database.ErrDuplicateKey)

		err = f.store.Likes.Create(ctx, &models.Like{UserID: f.alice.ID, TweetID: 424242})
		assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
	})

	t.Run("likers in like order", func(t *testing.T) {
		likers, err := f.store.Users.LikersOf(ctx, tw[1].ID)
		require.NoError(t, err)
		require.Len(t, likers, 2)
		assert.Equal(t, "alice", likers[0].Username)
		assert.Equal(t, "carol", likers[1].Username)

		none, err := f.store.Users.LikersOf(ctx, tw[0].ID)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("owner filter", func(t *testing.T) {
		bobs, err := f.store.Tweets.List(ctx, TweetFilter{OwnerID: f.bob.ID}, page(0, 100, SortDesc))
		require.NoError(t, err)
		assert.Equal(t, []uint{tw[5].ID, tw[3].ID, tw[1].ID}, ids(bobs))

		n, err := f.store.Tweets.CountByOwner(ctx, f.bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("keyword filter", func(t *testing.T) {
		hits, err := f.store.Tweets.List(ctx, TweetFilter{Keyword: "alice"}, page(0, 100, SortAsc))
		require.NoError(t, err)
		assert.Equal(t, []uint{tw[0].ID, tw[2].ID}, ids(hits))

		percent, err := f.store.Tweets.List(ctx, TweetFilter{Keyword: "0%"}, page(0, 100, SortAsc))
		require.NoError(t, err)
		assert.Equal(t, []uint{tw[3].ID}, ids(percent))

		underscore, err := f.store.Tweets.List(ctx, TweetFilter{Keyword: "l_u"}, page(0, 100, SortAsc))
		require.NoError(t, err)
		assert.Equal(t, []uint{tw[4].ID}, ids(underscore))
	})

	t.Run("feed filter", func(t *testing.T) {
		empty, err := f.store.Tweets.List(ctx, TweetFilter{FollowedBy: f.alice.ID}, page(0, 100, SortDesc))
		require.NoError(t, err)
		assert.Empty(t, empty)

		require.NoError(t, f.store.Follows.Create(ctx, &models.Follow{FollowerID: f.alice.ID, FollowedID: f.bob.ID}))
		require.NoError(t, f.store.Follows.Create(ctx, &models.Follow{FollowerID: f.alice.ID, FollowedID: f.carol.ID}))
		require.NoError(t, f.store.Follows.Create(ctx, &models.Follow{FollowerID: f.carol.ID, FollowedID: f.alice.ID}))

		feed, err := f.store.Tweets.List(ctx, TweetFilter{FollowedBy: f.alice.ID}, page(0, 100, SortDesc))
		require.NoError(t, err)
		assert.Equal(t, []uint{tw[5].ID, tw[3].ID, tw[4].ID, tw[1].ID}, ids(feed))

		followers, err := f.store.Follows.CountFollowers(ctx, f.alice.ID)
		require.NoError(t, err)
		following, err := f.store.Follows.CountFollowing(ctx, f.alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), followers)
		assert.Equal(t, int64(2), following)
	})

	t.Run("follow constraints", func(t *testing.T) {
		err := f.store.Follows.Create(ctx, &models.Follow{FollowerID: f.alice.ID, FollowedID: f.bob.ID})
		assert.ErrorIs(t, err, database.ErrDuplicateKey)

		err = f.store.Follows.Create(ctx, &models.Follow{FollowerID: f.bob.ID, FollowedID: f.bob.ID})
		assert.ErrorIs(t, err, database.ErrCheckViolation)
	})

	t.Run("scoped deletes", func(t *testing.T) {
		removed, err := f.store.Likes.Delete(ctx, f.bob.ID, tw[1].ID)
		require.NoError(t, err)
		assert.False(t, removed, "bob never liked this tweet")

		removed, err = f.store.Follows.Delete(ctx, f.bob.ID, f.alice.ID)
		require.NoError(t, err)
		assert.False(t, removed)

		removed, err = f.store.Likes.Delete(ctx, f.carol.ID, tw[1].ID)
		require.NoError(t, err)
		assert.True(t, removed)

		exists, err := f.store.Likes.Exists(ctx, f.alice.ID, tw[1].ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("update content", func(t *testing.T) {
		require.NoError(t, f.store.Tweets.UpdateContent(ctx, tw[0].ID, "edited"))
		got, err := f.store.Tweets.FindByID(ctx, tw[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Content)
		assert.True(t, got.CreatedAt.Equal(tw[0].CreatedAt))

		assert.ErrorIs(t, f.store.Tweets.UpdateContent(ctx, 424242, "x"), gorm.ErrRecordNotFound)
	})

	t.Run("transaction rolls back", func(t *testing.T) {
		err := f.store.Transaction(ctx, func(tx *Store) error {
			if err := tx.Likes.DeleteByUser(ctx, f.alice.ID); err != nil {
				return err
			}
			return tx.Follows.Create(ctx, &models.Follow{FollowerID: f.alice.ID, FollowedID: f.bob.ID})
		})
		assert.ErrorIs(t, err, database.ErrDuplicateKey)

		exists, err := f.store.Likes.Exists(ctx, f.alice.ID, tw[1].ID)
		require.NoError(t, err)
		assert.True(t, exists, "delete inside failed transaction must not commit")
	})

	t.Run("cascade helpers", func(t *testing.T) {
		require.NoError(t, f.store.Likes.Create(ctx, &models.Like{UserID: f.carol.ID, TweetID: tw[5].ID}))
		require.NoError(t, f.store.Likes.DeleteOnTweetsOf(ctx, f.bob.ID))

		n, err := f.store.Likes.CountByTweet(ctx, tw[5].ID)
		require.NoError(t, err)
		assert.Zero(t, n)

		require.NoError(t, f.store.Follows.DeleteByUser(ctx, f.alice.ID))
		followers, err := f.store.Follows.CountFollowers(ctx, f.alice.ID)
		require.NoError(t, err)
		following, err := f.store.Follows.CountFollowing(ctx, f.alice.ID)
		require.NoError(t, err)
		assert.Zero(t, followers)
		assert.Zero(t, following)

		require.NoError(t, f.store.Tweets.DeleteByOwner(ctx, f.bob.ID))
		n, err = f.store.Tweets.CountByOwner(ctx, f.bob.ID)
		require.NoError(t, err)
		assert.Zero(t, n)

		removed, err := f.store.Users.Delete(ctx, f.bob.ID)
		require.NoError(t, err)
		assert.True(t, removed)
		_, err = f.store.Users.FindByID(ctx, f.bob.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
