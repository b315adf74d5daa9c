// Package store contains the in-memory data layer separated from HTTP
// handlers. Every collection lives in a map keyed by a uint64 identifier
// assigned from a per-collection counter that starts at 1. Nothing is
// persisted: a process restart loses all state except what Seed recreates.
//
// Echo serves requests concurrently, so a single RWMutex guards every
// collection. Compound operations such as the merge-or-create path in
// AddToCart hold the write lock for their full duration.
package store

import "sync"

// Store holds all application collections and their id counters. Construct
// it with New and pass it to handlers explicitly; there is no package-level
// singleton so tests can build isolated instances.
type Store struct {
	mu sync.RWMutex

	users         map[uint64]User
	eventTypes    map[uint64]EventType
	events        map[uint64]Event
	cartItems     map[uint64]CartItem
	registrations map[uint64]Registration
	refreshTokens map[string]RefreshToken // keyed by SHA-256 hash of the raw token

	userSeq         uint64
	eventTypeSeq    uint64
	eventSeq        uint64
	cartItemSeq     uint64
	registrationSeq uint64
}

// New returns an empty Store. When seed is true the three default event
// types and their sample events are created so the catalog is browsable
// immediately after startup.
func New(seed bool) *Store {
	s := &Store{
		users:         make(map[uint64]User),
		eventTypes:    make(map[uint64]EventType),
		events:        make(map[uint64]Event),
		cartItems:     make(map[uint64]CartItem),
		registrations: make(map[uint64]Registration),
		refreshTokens: make(map[string]RefreshToken),
	}
	if seed {
		s.seed()
	}
	return s
}

// seed installs the deterministic catalog: three Nepali ceremony event types
// and one sample event per type. The sample events carry organizerId 1,
// matching whichever account registers first; referential integrity is only
// enforced on API-driven writes, not on seed data.
func (s *Store) seed() {
	wedding, _ := s.CreateEventType(EventType{
		Name:        "Wedding",
		Description: "Traditional Nepali wedding ceremonies with cultural rituals and celebrations.",
		ImageURL:    "https://www.shutterstock.com/shutterstock/photos/1521756545/display_1500/stock-photo-a-beautiful-bride-in-a-marriage-ceremony-at-kathmandu-nepal-she-is-wearing-her-red-cultural-sari-1521756545.jpg",
	})
	bratabandha, _ := s.CreateEventType(EventType{
		Name:        "Bratabandha",
		Description: "Coming of age ritual for boys in Nepali Hindu tradition with sacred ceremonies.",
		ImageURL:    "https://mir-s3-cdn-cf.behance.net/project_modules/1400/7bcdb7169212483.6448e308013b9.jpg",
	})
	pasni, _ := s.CreateEventType(EventType{
		Name:        "Pasni",
		Description: "Rice feeding ceremony for babies, an important milestone in Nepali culture.",
		ImageURL:    "https://www.bihebazaar.com/uploads/2022/10/rice-feeding.jpg",
	})

	s.CreateEvent(Event{
		Title:       "Traditional Nepali Wedding",
		Description: "Experience an authentic Nepali wedding ceremony with traditional rituals including Janti (wedding procession), Swayambar (bride choosing the groom), Sindoor (vermillion) ceremony, and festive celebrations with traditional music and dancing.",
		Price:       5000,
		ImageURL:    wedding.ImageURL,
		EventTypeID: wedding.ID,
		OrganizerID: 1,
	})
	s.CreateEvent(Event{
		Title:       "Bratabandha Ceremony",
		Description: "Join us for a sacred Bratabandha ceremony, the coming-of-age ritual for boys in Nepali Hindu tradition. This ceremony includes the sacred thread (Janai) bestowing, head-shaving ritual, and Vedic rites performed by experienced priests.",
		Price:       3500,
		ImageURL:    bratabandha.ImageURL,
		EventTypeID: bratabandha.ID,
		OrganizerID: 1,
	})
	s.CreateEvent(Event{
		Title:       "Pasni Rice Feeding Ceremony",
		Description: "Celebrate your baby's rice feeding ceremony with traditional Nepali customs. The Pasni marks a child's first solid food at either 5 months (girls) or 6 months (boys) with blessings from elders, offerings to deities, and traditional attire.",
		Price:       2500,
		ImageURL:    pasni.ImageURL,
		EventTypeID: pasni.ID,
		OrganizerID: 1,
	})
}
