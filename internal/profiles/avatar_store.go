package profiles

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrAvatarNotFound = errors.New("avatar not found")

// AvatarStore keeps profile avatars on disk, one folder per user,
// named by the upload unix timestamp. Old avatars are removed on
// each new upload, the latest one wins.
type AvatarStore struct {
	rootPath string
}

func NewAvatarStore(rootPath string) (*AvatarStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create avatars root: %w", err)
	}
	return &AvatarStore{
		rootPath: rootPath,
	}, nil
}

// Save stores the avatar as {userID}/{timestamp}.jpg and returns that
// relative path, which the handler turns into a public URL.
func (as *AvatarStore) Save(userID uuid.UUID, timestamp int64, content io.Reader) (string, error) {
	userDir := path.Join(as.rootPath, userID.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("create user avatar dir: %w", err)
	}

	// drop previous avatars, no need to hoard them
	entries, err := os.ReadDir(userDir)
	if err != nil {
		return "", fmt.Errorf("read user avatar dir: %w", err)
	}
	for _, entry := range entries {
		if err := os.Remove(path.Join(userDir, entry.Name())); err != nil {
			log.Errorf("avatar store: remove old avatar %s: %s", entry.Name(), err)
		}
	}

	fileName := fmt.Sprintf("%d.jpg", timestamp)
	file, err := os.Create(path.Join(userDir, fileName))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("write avatar file: %w", err)
	}

	return path.Join(userID.String(), fileName), nil
}

// Open returns the avatar file for the given relative path ({userID}/{file}).
// The caller closes the returned file.
func (as *AvatarStore) Open(relPath string) (*os.File, error) {
	relPath = path.Clean("/" + relPath)
	if strings.Contains(relPath, "..") {
		return nil, ErrAvatarNotFound
	}

	file, err := os.Open(path.Join(as.rootPath, relPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAvatarNotFound
		}
		return nil, err
	}
	return file, nil
}

// RemoveAll deletes all avatars of the given user.
func (as *AvatarStore) RemoveAll(userID uuid.UUID) error {
	return os.RemoveAll(path.Join(as.rootPath, userID.String()))
}
