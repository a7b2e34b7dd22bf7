package catalog

var demoTracks = []Track{
	{
		ID:       "1",
		Title:    "Betmenny Ensak",
		Artist:   "Sherine",
		Album:    "Sherine 2024",
		Duration: 240,
		Image:    "/images/sherine-album.png",
		AudioURL: "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/Btmanna%20Ansak-nbHWM7xxibCXLXt7pH5SuRqrxe7LYO.mp3",
	},
	{
		ID:       "2",
		Title:    "Draganov",
		Artist:   "3DABL",
		Album:    "DRAGANOV",
		Duration: 180,
		Image:    "/images/3dabl-draganov.png",
		AudioURL: "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/Draganov%20-%203dabi%20%28Official%20Audio%29-Tqs7FkVBIptYkSbVyFG25t09v5sEto.mp3",
	},
	{
		ID:       "3",
		Title:    "Blue Love",
		Artist:   "ElGrandeToto",
		Album:    "Blue Love",
		Duration: 210,
		Image:    "/images/hawjidi-album.png",
		AudioURL: "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/ElgrandeToto%20BLUE%20LOVE%20%28Lyrics%20video%29-FcROIoPKAfjWkffVsUTvMOSgR97B6q.mp3",
	},
	{
		ID:       "4",
		Title:    "Spotlight",
		Artist:   "The Artist",
		Album:    "Reflections",
		Duration: 178,
		Image:    "/images/spotlight-artist.png",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "5",
		Title:    "WTSHL",
		Artist:   "CHEU-B",
		Album:    "WTSHL Vol.1",
		Duration: 141,
		Image:    "/images/wtshl-album.png",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "6",
		Title:    "Street Stories",
		Artist:   "Urban Artist",
		Album:    "City Life",
		Duration: 238,
		Image:    "/images/adidas-comic.png",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "7",
		Title:    "Curtain Call",
		Artist:   "Eminem",
		Album:    "Curtain Call: The Hits",
		Duration: 195,
		Image:    "/images/eminem-curtain-call.png",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "8",
		Title:    "Burning Doors",
		Artist:   "Fire Element",
		Album:    "Flames",
		Duration: 195,
		Image:    "/images/burning-door.png",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "9",
		Title:    "The Death of Slim Shady",
		Artist:   "Eminem",
		Album:    "The Death of Slim Shady",
		Duration: 267,
		Image:    "/images/slim-shady-death.png",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "10",
		Title:    "Encore",
		Artist:   "Eminem",
		Album:    "Encore",
		Duration: 223,
		Image:    "/images/eminem-encore.png",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
}

var demoArtists = []Artist{
	{ID: "1", Name: "Sherine", Image: "/images/sherine-album.png", Followers: "12.5M"},
	{ID: "2", Name: "ElGrandeToto", Image: "/images/hawjidi-album.png", Followers: "8.2M"},
	{ID: "3", Name: "Eminem", Image: "/images/eminem-curtain-call.png", Followers: "45.1M"},
	{ID: "4", Name: "3DABL", Image: "/images/3dabl-draganov.png", Followers: "2.1M"},
	{ID: "5", Name: "CHEU-B", Image: "/images/wtshl-album.png", Followers: "1.8M"},
}

var demoAlbums = []Album{
	{ID: "1", Title: "Sherine 2024", Artist: "Sherine", Image: "/images/sherine-album.png", Year: 2024},
	{ID: "2", Title: "DRAGANOV", Artist: "3DABL", Image: "/images/3dabl-draganov.png", Year: 2023},
	{ID: "3", Title: "Curtain Call: The Hits", Artist: "Eminem", Image: "/images/eminem-curtain-call.png", Year: 2005},
	{ID: "4", Title: "Encore", Artist: "Eminem", Image: "/images/eminem-encore.png", Year: 2004},
	{ID: "5", Title: "The Death of Slim Shady", Artist: "Eminem", Image: "/images/slim-shady-death.png", Year: 2024},
}

// DefaultCovers is the artwork pool used when a playlist is created
// without explicit artwork.
var DefaultCovers = []string{
	"/images/sherine-album.png",
	"/images/3dabl-draganov.png",
	"/images/hawjidi-album.png",
	"/images/spotlight-artist.png",
	"/images/wtshl-album.png",
	"/images/adidas-comic.png",
	"/images/eminem-curtain-call.png",
	"/images/burning-door.png",
	"/images/slim-shady-death.png",
	"/images/eminem-encore.png",
}
