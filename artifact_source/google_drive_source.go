package artifact_source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/home-energy-audit/energy-import/types"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const driveFolderMimeType = "application/vnd.google-apps.folder"

// GoogleDriveSource is a [Source] implementation that reads files from Google Drive
type GoogleDriveSource struct {
	Config     *GoogleDriveSourceConfig
	Extensions types.ExtensionFilter
	service    *drive.Service
}

func NewGoogleDriveSource(ctx context.Context, config *GoogleDriveSourceConfig) (*GoogleDriveSource, error) {
	ts, err := config.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	// the authorized client wraps the shared transport
	client := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, sharedHTTPClient), ts)
	opts := []option.ClientOption{option.WithHTTPClient(client)}

	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	slog.Info("Initialized GoogleDriveSource", "extensions", config.Extensions)
	return &GoogleDriveSource{
		Config:     config,
		Extensions: types.NewExtensionFilter(config.Extensions),
		service:    service,
	}, nil
}

func (s *GoogleDriveSource) Identifier() string {
	return GoogleDriveSourceIdentifier
}

func (s *GoogleDriveSource) ListChildren(ctx context.Context, parentId string) ([]types.RemoteFile, error) {
	var res []types.RemoteFile

	call := s.service.Files.List().
		Q(childrenQuery(parentId)).
		Fields("nextPageToken, files(id, name, mimeType)").
		PageSize(1000)
	if qp := s.Config.connection().quotaProject(); qp != "" {
		call.Header().Set("X-Goog-User-Project", qp)
	}

	err := call.Pages(ctx, func(page *drive.FileList) error {
		for _, f := range page.Files {
			res = append(res, types.RemoteFile{
				Id:       f.Id,
				Name:     f.Name,
				IsFolder: f.MimeType == driveFolderMimeType,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filterChildren(s.Extensions, res), nil
}

func (s *GoogleDriveSource) GetContent(ctx context.Context, id string) (string, error) {
	resp, err := s.service.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read content of %s: %w", id, err)
	}
	return string(data), nil
}

func (s *GoogleDriveSource) Close() error {
	return nil
}

// childrenQuery builds the drive search query for the untrashed children of a folder
func childrenQuery(parentId string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(parentId)
	return fmt.Sprintf("'%s' in parents and trashed=false", escaped)
}
