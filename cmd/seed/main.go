package main

import (
	"log"
	"os"
	"time"

	"tendorai/internal/database"
	"tendorai/internal/domain/article"
	"tendorai/internal/domain/auth"
	"tendorai/internal/domain/lead"
	"tendorai/internal/domain/review"
	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tendorai.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&auth.User{},
		&vendor.Vendor{},
		&lead.Lead{},
		&lead.Note{},
		&review.Review{},
		&review.Request{},
		&article.Article{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM review_requests")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM lead_notes")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM articles")
	db.Exec("DELETE FROM vendors")
	db.Exec("DELETE FROM users")

	now := time.Now()

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := auth.User{
		Email:        "admin@tendorai.com",
		PasswordHash: string(adminHash),
		Role:         auth.RoleAdmin,
		Name:         "Platform Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	vendorHash, _ := bcrypt.GenerateFromPassword([]byte("vendor123"), bcrypt.DefaultCost)

	type seedVendor struct {
		email    string
		name     string
		company  string
		city     string
		tier     string
		services []string
		rating   float64
		reviews  int
	}
	seeds := []seedVendor{
		{"sales@apexcopiers.example", "Sam Lee", "Apex Copiers", "Manchester", tier.RawVerified, []string{vendor.CategoryPhotocopiers}, 4.8, 24},
		{"hello@citytelecoms.example", "Priya Shah", "City Telecoms", "London", tier.RawVisible, []string{vendor.CategoryTelecoms, vendor.CategoryIT}, 4.5, 11},
		{"info@budgetprint.example", "Chris Doyle", "Budget Print", "Leeds", tier.RawFree, []string{vendor.CategoryPhotocopiers}, 3.9, 3},
		{"team@securesight.example", "Ana Costa", "SecureSight CCTV", "Birmingham", tier.RawVisible, []string{vendor.CategoryCCTV}, 4.2, 7},
	}

	log.Println("Creating vendors...")
	for _, s := range seeds {
		u := auth.User{
			Email:        s.email,
			PasswordHash: string(vendorHash),
			Role:         auth.RoleVendor,
			Name:         s.name,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatal(err)
		}
		v := vendor.Vendor{
			UserID:       u.ID,
			CompanyName:  s.company,
			Email:        s.email,
			City:         s.city,
			Services:     s.services,
			Tier:         s.tier,
			Status:       vendor.StatusActive,
			Rating:       s.rating,
			TotalReviews: s.reviews,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := db.Create(&v).Error; err != nil {
			log.Fatal(err)
		}
	}

	// ================== LEADS ==================
	log.Println("Creating sample leads...")
	var apex vendor.Vendor
	if err := db.First(&apex, "company_name = ?", "Apex Copiers").Error; err != nil {
		log.Fatal(err)
	}

	viewed := now.Add(-36 * time.Hour)
	value := 3200.0
	leads := []lead.Lead{
		{
			VendorID: apex.ID, CompanyName: "Acme Ltd", ContactName: "Jordan Smith",
			Email: "jordan@acme.example", Phone: "07700 900123", Postcode: "M1 2AB",
			Category: vendor.CategoryPhotocopiers, Message: "Need 3 A3 machines",
			Status: lead.StatusPending, CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			VendorID: apex.ID, CompanyName: "Northern Legal", ContactName: "Alex Green",
			Email: "alex@northernlegal.example", Phone: "07700 900456", Postcode: "M3 4CD",
			Category: vendor.CategoryPhotocopiers,
			Status:   lead.StatusWon, ViewedAt: &viewed, ClosedAt: &now, QuoteValue: &value,
			CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now,
		},
	}
	for i := range leads {
		if err := db.Create(&leads[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	// ================== ARTICLES ==================
	log.Println("Creating articles...")
	articles := []article.Article{
		{
			Slug: "photocopier-leasing-guide", Title: "Photocopier Leasing: A Buyer's Guide",
			Summary:  "Lease vs buy, typical contract terms and what to watch for.",
			Body:     "Leasing spreads the cost of office print hardware...",
			Category: vendor.CategoryPhotocopiers,
			Published: true, PublishedAt: &now, CreatedAt: now, UpdatedAt: now,
		},
		{
			Slug: "voip-migration-checklist", Title: "VoIP Migration Checklist",
			Summary:  "Everything to check before switching your phone system.",
			Body:     "Start with an audit of your current lines...",
			Category: vendor.CategoryTelecoms,
			Published: true, PublishedAt: &now, CreatedAt: now, UpdatedAt: now,
		},
	}
	for i := range articles {
		if err := db.Create(&articles[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
	log.Println("  admin:  admin@tendorai.com / admin123")
	log.Println("  vendor: sales@apexcopiers.example / vendor123")
}
