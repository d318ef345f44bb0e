package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/garnizeh/watchrepair/internal/repository/memory"
	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

func boolPtr(b bool) *bool { return &b }

func TestNew_SeedsCatalog(t *testing.T) {
	ctx := context.Background()
	s := memory.New(nil)

	wms, _ := s.ListWatchmakers(ctx)
	if len(wms) != 1 {
		t.Fatalf("expected 1 seeded watchmaker got %d", len(wms))
	}
	w := wms[0]
	if w.ID != 1 || w.Specialization != "Complicated Movements" || w.ReviewCount != 203 || !w.IsActive {
		t.Fatalf("unexpected seeded watchmaker: %#v", w)
	}
	if w.ImageURL != nil {
		t.Fatalf("empty image url should be stored as null, got %q", *w.ImageURL)
	}

	services, _ := s.ListServices(ctx)
	if len(services) != 4 {
		t.Fatalf("expected 4 seeded services got %d", len(services))
	}
	for i, want := range []string{"manual", "automatic", "vintage", "luxury"} {
		if services[i].Category != want || services[i].ID != int64(i+1) {
			t.Fatalf("service %d: want category %q got %#v", i, want, services[i])
		}
	}

	gallery, _ := s.ListGalleryItems(ctx)
	if len(gallery) != 3 {
		t.Fatalf("expected 3 seeded gallery items got %d", len(gallery))
	}

	quotes, _ := s.ListQuotes(ctx)
	contacts, _ := s.ListContacts(ctx)
	if len(quotes) != 0 || len(contacts) != 0 {
		t.Fatalf("expected no quotes/contacts, got %d/%d", len(quotes), len(contacts))
	}
}

func TestCreateQuote_DefaultsAndGet(t *testing.T) {
	ctx := context.Background()
	s := memory.NewEmpty(nil)
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return fixed })

	in := &models.InsertQuote{
		Name:             "Ann",
		Email:            "ann@example.com",
		Phone:            "",
		WatchBrand:       "Omega",
		WatchModel:       "Speedmaster",
		WatchType:        "manual",
		IssueDescription: "runs fast",
		Urgency:          "standard",
	}
	q, err := s.CreateQuote(ctx, in)
	if err != nil {
		t.Fatalf("CreateQuote: %v", err)
	}
	if q.ID != 1 || q.Status != models.QuoteStatusPending || !q.CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected quote: %#v", q)
	}
	if q.Phone != nil || q.Budget != nil || q.PreferredService != nil {
		t.Fatalf("absent optional fields should be null: %#v", q)
	}
	if q.WatchModel == nil || *q.WatchModel != "Speedmaster" {
		t.Fatalf("watchModel not kept: %#v", q.WatchModel)
	}

	got, err := s.GetQuote(ctx, q.ID)
	if err != nil || got == nil {
		t.Fatalf("GetQuote: %v %#v", err, got)
	}
	if got.IssueDescription != in.IssueDescription || got.CreatedAt != q.CreatedAt || got.Status != q.Status {
		t.Fatalf("GetQuote mismatch: %#v vs %#v", got, q)
	}

	missing, err := s.GetQuote(ctx, 42)
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for missing quote got %#v, %v", missing, err)
	}
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := memory.NewEmpty(nil)

	q, _ := s.CreateQuote(ctx, &models.InsertQuote{Name: "A", IssueDescription: "x"})
	c, _ := s.CreateContact(ctx, &models.InsertContact{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"})

	if c.Status != models.ContactStatusUnread {
		t.Fatalf("expected unread contact got %q", c.Status)
	}

	// any status string is accepted
	uq, err := s.UpdateQuoteStatus(ctx, q.ID, "on-the-bench")
	if err != nil || uq == nil || uq.Status != "on-the-bench" {
		t.Fatalf("UpdateQuoteStatus: %#v %v", uq, err)
	}
	if got, _ := s.GetQuote(ctx, q.ID); got.Status != "on-the-bench" {
		t.Fatalf("status not persisted: %q", got.Status)
	}

	uc, err := s.UpdateContactStatus(ctx, c.ID, "read")
	if err != nil || uc == nil || uc.Status != "read" {
		t.Fatalf("UpdateContactStatus: %#v %v", uc, err)
	}

	// unknown ids: absent result, nothing mutated
	none, err := s.UpdateQuoteStatus(ctx, 999, "quoted")
	if err != nil || none != nil {
		t.Fatalf("expected nil, nil for unknown quote got %#v, %v", none, err)
	}
	if got, _ := s.GetQuote(ctx, q.ID); got.Status != "on-the-bench" {
		t.Fatalf("existing quote mutated: %q", got.Status)
	}
	if none, _ := s.UpdateContactStatus(ctx, 999, "read"); none != nil {
		t.Fatalf("expected nil for unknown contact got %#v", none)
	}
}

func TestWatchmakers_ActiveFilterAndSearch(t *testing.T) {
	ctx := context.Background()
	s := memory.NewEmpty(nil)

	active, _ := s.CreateWatchmaker(ctx, &models.InsertWatchmaker{Name: "A", Specialization: "Complicated Movements", Rating: "4.9"})
	inactive, _ := s.CreateWatchmaker(ctx, &models.InsertWatchmaker{Name: "B", Specialization: "Movement Overhaul", Rating: "4.0", IsActive: boolPtr(false)})
	_, _ = s.CreateWatchmaker(ctx, &models.InsertWatchmaker{Name: "C", Specialization: "Dials", Rating: "4.5"})

	if !active.IsActive || active.ReviewCount != 0 || active.Certifications != nil {
		t.Fatalf("defaults not applied: %#v", active)
	}

	all, _ := s.ListWatchmakers(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 active watchmakers got %d", len(all))
	}

	found, _ := s.ListWatchmakersBySpecialization(ctx, "movement")
	if len(found) != 1 || found[0].ID != active.ID {
		t.Fatalf("expected only the active movement specialist, got %#v", found)
	}

	// inactive records stay addressable by id
	got, _ := s.GetWatchmaker(ctx, inactive.ID)
	if got == nil || got.IsActive {
		t.Fatalf("expected inactive watchmaker by id got %#v", got)
	}
}

func TestServicesByCategory_ExactMatch(t *testing.T) {
	ctx := context.Background()
	s := memory.New(nil)

	got, _ := s.ListServicesByCategory(ctx, "vintage")
	if len(got) != 1 || got[0].Name != "Vintage Restoration" {
		t.Fatalf("unexpected vintage services: %#v", got)
	}
	if got, _ := s.ListServicesByCategory(ctx, "Vintage"); len(got) != 0 {
		t.Fatalf("category match must be exact, got %d", len(got))
	}
	if got, _ := s.ListServicesByCategory(ctx, "quartz"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice got %#v", got)
	}
}

func TestGallery_Featured(t *testing.T) {
	ctx := context.Background()
	s := memory.NewEmpty(nil)

	_, _ = s.CreateGalleryItem(ctx, &models.InsertGalleryItem{Title: "one", Featured: boolPtr(true)})
	plain, _ := s.CreateGalleryItem(ctx, &models.InsertGalleryItem{Title: "two"})
	_, _ = s.CreateGalleryItem(ctx, &models.InsertGalleryItem{Title: "three", Featured: boolPtr(true)})

	if plain.Featured || plain.Description != nil || plain.CompletionTime != nil {
		t.Fatalf("defaults not applied: %#v", plain)
	}

	featured, _ := s.ListFeaturedGalleryItems(ctx)
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured got %d", len(featured))
	}
	for _, g := range featured {
		if !g.Featured {
			t.Fatalf("non-featured item in featured list: %#v", g)
		}
	}
	all, _ := s.ListGalleryItems(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 items got %d", len(all))
	}
}

func TestIDs_PerKindAndInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := memory.NewEmpty(nil)

	// interleave creates across kinds
	for i := 0; i < 5; i++ {
		q, _ := s.CreateQuote(ctx, &models.InsertQuote{Name: "q"})
		c, _ := s.CreateContact(ctx, &models.InsertContact{Name: "c"})
		if q.ID != int64(i+1) || c.ID != int64(i+1) {
			t.Fatalf("iteration %d: ids not independent per kind: quote=%d contact=%d", i, q.ID, c.ID)
		}
	}

	quotes, _ := s.ListQuotes(ctx)
	if len(quotes) != 5 {
		t.Fatalf("expected 5 quotes got %d", len(quotes))
	}
	for i, q := range quotes {
		if q.ID != int64(i+1) {
			t.Fatalf("list not in creation order at %d: id=%d", i, q.ID)
		}
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.NewEmpty(nil)

	w, _ := s.CreateWatchmaker(ctx, &models.InsertWatchmaker{Name: "A", Bio: "orig", Certifications: []string{"WOSTEP"}})
	*w.Bio = "changed"
	w.Certifications[0] = "changed"
	w.Name = "changed"

	got, _ := s.GetWatchmaker(ctx, w.ID)
	if got.Name != "A" || *got.Bio != "orig" || got.Certifications[0] != "WOSTEP" {
		t.Fatalf("stored record was mutated through a returned copy: %#v", got)
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := memory.NewEmpty(nil)

	if u, err := s.GetUserByUsername(ctx, "nobody"); err != nil || u != nil {
		t.Fatalf("expected nil, nil got %#v, %v", u, err)
	}

	u, err := s.CreateUser(ctx, &models.InsertUser{Username: "admin", Password: "hash"})
	if err != nil || u.ID != 1 {
		t.Fatalf("CreateUser: %#v %v", u, err)
	}
	if _, err := s.CreateUser(ctx, &models.InsertUser{Username: "admin", Password: "other"}); !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken got %v", err)
	}

	byName, _ := s.GetUserByUsername(ctx, "admin")
	if byName == nil || byName.ID != u.ID {
		t.Fatalf("GetUserByUsername: %#v", byName)
	}
	byID, _ := s.GetUser(ctx, u.ID)
	if byID == nil || byID.Username != "admin" {
		t.Fatalf("GetUser: %#v", byID)
	}

	next, _ := s.CreateUser(ctx, &models.InsertUser{Username: "second"})
	if next.ID != 2 {
		t.Fatalf("expected id 2 got %d", next.ID)
	}
}

func TestConcurrentCreates_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := memory.NewEmpty(nil)

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, _ := s.CreateContact(ctx, &models.InsertContact{Name: "x"})
			ids <- c.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d ids got %d", n, len(seen))
	}
}
