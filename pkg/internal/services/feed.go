package services

import (
	"fmt"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/samber/lo"
)

type FeedKind string

const (
	FeedGlobal        = FeedKind("global")
	FeedGroup         = FeedKind("group")
	FeedAuthor        = FeedKind("author")
	FeedSubscriptions = FeedKind("subscriptions")
)

var ErrViewerRequired = fmt.Errorf("subscription feed requires an authenticated viewer")

// ComposeFeed resolves a feed selector to an ordered page of posts and
// decorates each entry for the viewer. Group and author selectors are
// resolved first, so an unknown slug or username surfaces as not-found
// before any post query runs. The global feed consults the timeline cache
// before touching the store.
func ComposeFeed(viewer *models.Account, kind FeedKind, selector string, page int) (models.Page[models.PostView], error) {
	var none models.Page[models.PostView]

	size := FeedPageSize
	tx := database.C

	switch kind {
	case FeedGlobal:
		if cached, hit := GetTimelinePage(page); hit {
			return decorateFeedPage(viewer, cached), nil
		}
	case FeedGroup:
		group, err := GetGroup(selector)
		if err != nil {
			return none, err
		}
		tx = FilterPostWithGroup(tx, group.ID)
	case FeedAuthor:
		author, err := GetAccountWithName(selector)
		if err != nil {
			return none, err
		}
		tx = FilterPostWithAuthor(tx, author.ID)
	case FeedSubscriptions:
		if viewer == nil {
			return none, ErrViewerRequired
		}
		size = SubscriptionPageSize
		subscriptions, err := ListSubscriptions(viewer.ID)
		if err != nil {
			return none, err
		}
		if len(subscriptions) == 0 {
			return models.Page[models.PostView]{Items: []models.PostView{}, PageNumber: 1}, nil
		}
		tx = FilterPostWithSubscriptions(tx, subscriptions)
	default:
		return none, fmt.Errorf("unknown feed kind: %s", kind)
	}

	countTx := tx
	total, err := CountPost(countTx)
	if err != nil {
		return none, fmt.Errorf("unable to count feed posts: %v", err)
	}

	offset, number, totalPages := PageBounds(total, size, page)

	items, err := ListPost(tx, size, offset)
	if err != nil {
		return none, fmt.Errorf("unable to list feed posts: %v", err)
	}

	result := models.Page[models.Post]{
		Items:      items,
		PageNumber: number,
		TotalCount: total,
		TotalPages: totalPages,
	}

	if kind == FeedGlobal {
		CacheTimelinePage(number, result)
	}

	return decorateFeedPage(viewer, result), nil
}

// decorateFeedPage attaches the viewer-only following flag. One subscriptions
// query covers the whole page; anonymous viewers get false everywhere.
func decorateFeedPage(viewer *models.Account, in models.Page[models.Post]) models.Page[models.PostView] {
	followed := map[uint]bool{}
	if viewer != nil {
		if subscriptions, err := ListSubscriptions(viewer.ID); err == nil {
			for _, id := range subscriptions {
				followed[id] = true
			}
		}
	}

	items := lo.Map(in.Items, func(item models.Post, _ int) models.PostView {
		return models.PostView{
			Post:              item,
			IsFollowingAuthor: followed[item.AuthorID],
		}
	})

	return models.Page[models.PostView]{
		Items:      items,
		PageNumber: in.PageNumber,
		TotalCount: in.TotalCount,
		TotalPages: in.TotalPages,
	}
}
