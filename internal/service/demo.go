package service

import (
	"time"

	"github.com/and161185/moment-keeper/internal/model"
)

// DefaultImages is the image gallery offered by the moment form. The first
// entry is used when a moment is saved without an image.
var DefaultImages = []string{
	"https://images.unsplash.com/photo-1506744038136-46273834b3fb",
	"https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07",
	"https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
	"https://images.unsplash.com/photo-1472396961693-142e6e269027",
}

// DemoMoments returns a fresh copy of the collection shown before anything was saved.
func DemoMoments() []model.Moment {
	d := func(y int, m time.Month, day int) time.Time { return time.Date(y, m, day, 0, 0, 0, 0, time.UTC) }
	return []model.Moment{
		{
			ID:          "1",
			Title:       "Our First Date",
			Date:        d(2020, time.June, 12),
			Description: "We went to that cute cafe downtown and talked for hours. It was perfect!",
			ImageURL:    "https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
			Tags:        []string{"first date", "cafe", "beginning"},
		},
		{
			ID:          "2",
			Title:       "Weekend Getaway",
			Date:        d(2021, time.August, 23),
			Description: "Our spontaneous trip to the mountains. The views were breathtaking and the cabin was so cozy.",
			ImageURL:    "https://images.unsplash.com/photo-1506744038136-46273834b3fb",
			Tags:        []string{"vacation", "mountains", "adventure"},
		},
		{
			ID:          "3",
			Title:       "Anniversary Dinner",
			Date:        d(2023, time.June, 12),
			Description: "Celebrating our journey with an amazing dinner at our favorite restaurant.",
			ImageURL:    "https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07",
			Tags:        []string{"anniversary", "dinner", "celebration"},
			IsPrivate:   true,
		},
		{
			ID:          "4",
			Title:       "Beach Day",
			Date:        d(2022, time.July, 15),
			Description: "Perfect day at the beach. The sun was shining and the water was so refreshing.",
			ImageURL:    "https://images.unsplash.com/photo-1472396961693-142e6e269027",
			Tags:        []string{"beach", "summer", "relaxation"},
		},
	}
}
