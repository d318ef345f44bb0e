package models

import (
	"slices"
	"time"
)

// Domain models for the watch-repair catalog and its inbound requests.
// Nullable columns are pointers (or nil slices) so they serialize as JSON null.

// Initial statuses assigned by the store. Later statuses are free-form.
const (
	QuoteStatusPending  = "pending"
	ContactStatusUnread = "unread"
)

type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"password" db:"password"`
}

type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Watchmaker struct {
	ID             int64    `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	Email          string   `json:"email" db:"email"`
	Specialization string   `json:"specialization" db:"specialization"`
	Experience     int      `json:"experience" db:"experience"`
	HourlyRate     *string  `json:"hourlyRate" db:"hourly_rate"`
	FixedRate      *string  `json:"fixedRate" db:"fixed_rate"`
	Rating         string   `json:"rating" db:"rating"`
	ReviewCount    int      `json:"reviewCount" db:"review_count"`
	Availability   string   `json:"availability" db:"availability"`
	Certifications []string `json:"certifications" db:"certifications"`
	Bio            *string  `json:"bio" db:"bio"`
	ImageURL       *string  `json:"imageUrl" db:"image_url"`
	IsActive       bool     `json:"isActive" db:"is_active"`
}

// InsertWatchmaker carries caller-supplied fields. ReviewCount and IsActive are
// pointers so an absent value can be told apart from an explicit zero.
type InsertWatchmaker struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience"`
	HourlyRate     string   `json:"hourlyRate,omitempty"`
	FixedRate      string   `json:"fixedRate,omitempty"`
	Rating         string   `json:"rating"`
	ReviewCount    *int     `json:"reviewCount,omitempty"`
	Availability   string   `json:"availability"`
	Certifications []string `json:"certifications,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

type Service struct {
	ID                int64   `json:"id" db:"id"`
	Name              string  `json:"name" db:"name"`
	Description       string  `json:"description" db:"description"`
	Category          string  `json:"category" db:"category"`
	BasePrice         string  `json:"basePrice" db:"base_price"`
	EstimatedDuration string  `json:"estimatedDuration" db:"estimated_duration"`
	ImageURL          *string `json:"imageUrl" db:"image_url"`
}

type InsertService struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	BasePrice         string `json:"basePrice"`
	EstimatedDuration string `json:"estimatedDuration"`
	ImageURL          string `json:"imageUrl,omitempty"`
}

type Quote struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	Phone            *string   `json:"phone" db:"phone"`
	WatchBrand       string    `json:"watchBrand" db:"watch_brand"`
	WatchModel       *string   `json:"watchModel" db:"watch_model"`
	WatchType        string    `json:"watchType" db:"watch_type"`
	IssueDescription string    `json:"issueDescription" db:"issue_description"`
	PreferredService *string   `json:"preferredService" db:"preferred_service"`
	Urgency          string    `json:"urgency" db:"urgency"`
	Budget           *string   `json:"budget" db:"budget"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	Status           string    `json:"status" db:"status"`
}

// InsertQuote is the insertable shape of a Quote: no id, createdAt or status.
type InsertQuote struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	WatchBrand       string `json:"watchBrand"`
	WatchModel       string `json:"watchModel,omitempty"`
	WatchType        string `json:"watchType"`
	IssueDescription string `json:"issueDescription"`
	PreferredService string `json:"preferredService,omitempty"`
	Urgency          string `json:"urgency"`
	Budget           string `json:"budget,omitempty"`
}

type Contact struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Status    string    `json:"status" db:"status"`
}

type InsertContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type GalleryItem struct {
	ID             int64   `json:"id" db:"id"`
	Title          string  `json:"title" db:"title"`
	Description    *string `json:"description" db:"description"`
	BeforeImageURL string  `json:"beforeImageUrl" db:"before_image_url"`
	AfterImageURL  string  `json:"afterImageUrl" db:"after_image_url"`
	WatchmakerName string  `json:"watchmakerName" db:"watchmaker_name"`
	ServiceType    string  `json:"serviceType" db:"service_type"`
	CompletionTime *string `json:"completionTime" db:"completion_time"`
	Featured       bool    `json:"featured" db:"featured"`
}

type InsertGalleryItem struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	BeforeImageURL string `json:"beforeImageUrl"`
	AfterImageURL  string `json:"afterImageUrl"`
	WatchmakerName string `json:"watchmakerName"`
	ServiceType    string `json:"serviceType"`
	CompletionTime string `json:"completionTime,omitempty"`
	Featured       *bool  `json:"featured,omitempty"`
}

// Nullable returns nil for an empty string, mirroring how optional text
// columns are materialized.
func Nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NewWatchmaker materializes a stored record from its insertable shape.
func NewWatchmaker(id int64, in InsertWatchmaker) Watchmaker {
	w := Watchmaker{
		ID:             id,
		Name:           in.Name,
		Email:          in.Email,
		Specialization: in.Specialization,
		Experience:     in.Experience,
		HourlyRate:     Nullable(in.HourlyRate),
		FixedRate:      Nullable(in.FixedRate),
		Rating:         in.Rating,
		Availability:   in.Availability,
		Certifications: slices.Clone(in.Certifications),
		Bio:            Nullable(in.Bio),
		ImageURL:       Nullable(in.ImageURL),
		IsActive:       true,
	}
	if in.ReviewCount != nil {
		w.ReviewCount = *in.ReviewCount
	}
	if in.IsActive != nil {
		w.IsActive = *in.IsActive
	}
	return w
}

func NewService(id int64, in InsertService) Service {
	return Service{
		ID:                id,
		Name:              in.Name,
		Description:       in.Description,
		Category:          in.Category,
		BasePrice:         in.BasePrice,
		EstimatedDuration: in.EstimatedDuration,
		ImageURL:          Nullable(in.ImageURL),
	}
}

func NewQuote(id int64, in InsertQuote, createdAt time.Time) Quote {
	return Quote{
		ID:               id,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            Nullable(in.Phone),
		WatchBrand:       in.WatchBrand,
		WatchModel:       Nullable(in.WatchModel),
		WatchType:        in.WatchType,
		IssueDescription: in.IssueDescription,
		PreferredService: Nullable(in.PreferredService),
		Urgency:          in.Urgency,
		Budget:           Nullable(in.Budget),
		CreatedAt:        createdAt,
		Status:           QuoteStatusPending,
	}
}

func NewContact(id int64, in InsertContact, createdAt time.Time) Contact {
	return Contact{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: createdAt,
		Status:    ContactStatusUnread,
	}
}

func NewGalleryItem(id int64, in InsertGalleryItem) GalleryItem {
	g := GalleryItem{
		ID:             id,
		Title:          in.Title,
		Description:    Nullable(in.Description),
		BeforeImageURL: in.BeforeImageURL,
		AfterImageURL:  in.AfterImageURL,
		WatchmakerName: in.WatchmakerName,
		ServiceType:    in.ServiceType,
		CompletionTime: Nullable(in.CompletionTime),
	}
	if in.Featured != nil {
		g.Featured = *in.Featured
	}
	return g
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy so stored records never alias caller memory.
func (w Watchmaker) Clone() Watchmaker {
	w.HourlyRate = cloneString(w.HourlyRate)
	w.FixedRate = cloneString(w.FixedRate)
	w.Certifications = slices.Clone(w.Certifications)
	w.Bio = cloneString(w.Bio)
	w.ImageURL = cloneString(w.ImageURL)
	return w
}

func (s Service) Clone() Service {
	s.ImageURL = cloneString(s.ImageURL)
	return s
}

func (q Quote) Clone() Quote {
	q.Phone = cloneString(q.Phone)
	q.WatchModel = cloneString(q.WatchModel)
	q.PreferredService = cloneString(q.PreferredService)
	q.Budget = cloneString(q.Budget)
	return q
}

func (c Contact) Clone() Contact { return c }

func (u User) Clone() User { return u }

func (g GalleryItem) Clone() GalleryItem {
	g.Description = cloneString(g.Description)
	g.CompletionTime = cloneString(g.CompletionTime)
	return g
}
