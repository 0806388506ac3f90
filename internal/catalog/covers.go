package catalog

import "math/rand"

// stock workout covers, shown in the cover picker and used as a
// fallback when a workout or category is created without one
var gymCovers = []string{
	"https://images.unsplash.com/photo-1534438327276-14e5300c3a48?q=80&w=600&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?q=80&w=600&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?q=80&w=600&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1517836357463-d25dfeac3438?q=80&w=600&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5?q=80&w=600&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1596357395217-80de13130e92?q=80&w=600&auto=format&fit=crop",
}

func Covers() []string {
	covers := make([]string, len(gymCovers))
	copy(covers, gymCovers)
	return covers
}

func RandomCover() string {
	return gymCovers[rand.Intn(len(gymCovers))]
}
