package store

import (
	"time"

	"github.com/hautdegamme/studio-api/internal/model"
)

// adminHash is the bcrypt hash of the default back-office password.
// Deployments override the account by seeding their own hash; the
// default only exists so a fresh install is usable.
const adminHash = "$2b$10$h9kGcOWDFtQiqa8bzRewx.0iP3PicE792UJuX6uxz7FsTLdAOLf/6" // "admin123"

// Seed installs the default catalog, the demo clients and bookings,
// the admin account and the initial site chrome.  It is called once at
// process start; tests seed selectively instead.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()

	svc := func(name, desc string, price float64, duration int) model.Service {
		return model.Service{
			ID: s.newID(), Name: name, Description: desc, Price: price,
			Duration: duration, IsActive: true, CreatedAt: now, UpdatedAt: now,
		}
	}
	s.services = []model.Service{
		svc("Maquillage Jour", "Maquillage naturel pour tous les jours", 45, 60),
		svc("Maquillage Soirée", "Maquillage sophistiqué pour vos soirées", 65, 90),
		svc("Maquillage Mariée", "Maquillage parfait pour votre jour J", 120, 120),
		svc("Consultation Beauté", "Conseils personnalisés selon votre morphologie", 35, 45),
	}

	form := func(title, desc string, hours int, level string, price float64, maxStudents int) model.Formation {
		return model.Formation{
			ID: s.newID(), Title: title, Description: desc, Duration: hours,
			Level: level, Price: price, MaxStudents: maxStudents,
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		}
	}
	s.formations = []model.Formation{
		form("Formation Débutante", "Apprenez les bases du maquillage pour un usage quotidien", 4, "débutant", 149, 8),
		form("Formation Professionnelle", "Maîtrisez les techniques avancées pour devenir maquilleuse professionnelle", 16, "avancé", 599, 6),
		form("Formation Mariée", "Spécialisez-vous dans le maquillage mariée", 8, "intermédiaire", 299, 10),
	}

	s.clients = []model.Client{
		{ID: s.newID(), FirstName: "Marie", LastName: "Dupont", Email: "marie.dupont@email.com", Phone: "06 12 34 56 78", CreatedAt: now, UpdatedAt: now},
		{ID: s.newID(), FirstName: "Sarah", LastName: "Martin", Email: "sarah.martin@email.com", Phone: "06 98 76 54 32", CreatedAt: now, UpdatedAt: now},
	}

	// Demo bookings reference the seeded records above.  The seed may
	// install any status; only API-created reservations are forced to
	// PENDING.
	s.reservations = []model.Reservation{
		{
			ID: s.newID(), Date: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), Time: "14:00",
			Status: model.StatusConfirmed, Notes: "Première séance",
			ClientID: s.clients[0].ID, ServiceID: s.services[0].ID,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: s.newID(), Date: time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC), Time: "10:00",
			Status: model.StatusPending,
			ClientID: s.clients[1].ID, FormationID: s.formations[0].ID,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	s.users = []model.User{
		{
			ID: s.newID(), FirstName: "Admin", LastName: "User",
			Email: "admin@hautdegammevision.com", PasswordHash: adminHash,
			Role: model.RoleAdmin, CreatedAt: now, UpdatedAt: now,
		},
	}

	s.team = []model.TeamMember{
		{ID: s.newID(), Name: "Neill", Role: "Fondatrice & Maquilleuse professionnelle", DisplayOrder: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}

	s.themes = []model.Theme{
		{
			ID: s.newID(), Name: "Luxe doré",
			Colors:   map[string]any{"primary": "#b8860b", "background": "#fffaf3", "accent": "#1f1b16"},
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
	}

	s.settings = []model.SiteSetting{
		{Key: "site_name", Value: "Haut de Gamme Vision", UpdatedAt: now},
		{Key: "contact_email", Value: "contact@hautdegammevision.com", UpdatedAt: now},
		{Key: "booking_enabled", Value: true, UpdatedAt: now},
	}

	s.content = []model.SiteContent{
		{
			ID: s.newID(), Page: "home", Section: "hero",
			Content:   map[string]any{"title": "Révélez votre beauté", "subtitle": "Maquillage professionnel & formations"},
			UpdatedAt: now,
		},
	}
}
