package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"career-path-finder/internal/config"
)

// Azure stores objects in Azure Blob Storage, one container per folder.
type Azure struct {
	client     *azblob.Client
	serviceURL string
}

// NewAzure builds the blob client from a managed identity when requested,
// otherwise from the connection string, and creates the required containers.
func NewAzure(ctx context.Context, cfg config.AzureConfig) (*Azure, error) {
	var client *azblob.Client
	var err error

	switch {
	case cfg.UseManagedIdentity && cfg.AccountName != "":
		slog.Info("initializing azure storage with managed identity", "account", cfg.AccountName)
		cred, credErr := azidentity.NewDefaultAzureCredential(nil)
		if credErr != nil {
			return nil, fmt.Errorf("create azure credential: %w", credErr)
		}
		serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net", cfg.AccountName)
		client, err = azblob.NewClient(serviceURL, cred, nil)
	case cfg.ConnectionString != "":
		slog.Info("initializing azure storage with connection string")
		client, err = azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	default:
		return nil, fmt.Errorf("azure storage credentials not properly configured")
	}
	if err != nil {
		return nil, fmt.Errorf("create azure blob client: %w", err)
	}

	a := &Azure{client: client, serviceURL: strings.TrimSuffix(client.URL(), "/")}
	if err := a.ensureContainers(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Azure) ensureContainers(ctx context.Context) error {
	for _, f := range folders {
		_, err := a.client.CreateContainer(ctx, f, nil)
		if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return fmt.Errorf("create container %s: %w", f, err)
		}
	}
	return nil
}

func (a *Azure) Save(ctx context.Context, folder, name string, content []byte) (string, error) {
	// UploadBuffer overwrites an existing blob of the same name
	if _, err := a.client.UploadBuffer(ctx, folder, name, content, nil); err != nil {
		return "", fmt.Errorf("upload blob %s/%s: %w", folder, name, err)
	}
	return a.Locate(folder, name), nil
}

func (a *Azure) Get(ctx context.Context, folder, name string) ([]byte, bool, error) {
	resp, err := a.client.DownloadStream(ctx, folder, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("download blob %s/%s: %w", folder, name, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read blob %s/%s: %w", folder, name, err)
	}
	return content, true, nil
}

func (a *Azure) Delete(ctx context.Context, folder, name string) error {
	if _, err := a.client.DeleteBlob(ctx, folder, name, nil); err != nil {
		return fmt.Errorf("delete blob %s/%s: %w", folder, name, err)
	}
	return nil
}

func (a *Azure) Locate(folder, name string) string {
	return a.serviceURL + "/" + folder + "/" + name
}
