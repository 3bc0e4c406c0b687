package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"loja_front_end/internal/config"
)

var MinioClient *minio.Client

// ConnectMinio initialise le stockage des images produits. Optionnel :
// sans configuration, l'admin fournit des URLs d'images externes.
func ConnectMinio() {
	endpoint := config.Getenv("MINIO_ENDPOINT", "")
	if endpoint == "" {
		log.Println("⚠️ MinIO non configuré — upload d'images désactivé")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			config.Getenv("MINIO_ACCESS_KEY", ""),
			config.Getenv("MINIO_SECRET_KEY", ""),
			"",
		),
		Secure: config.Getenv("MINIO_SECURE", "") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO non configuré :", err)
		return
	}
	MinioClient = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}

func imageBucket() string {
	return config.Getenv("MINIO_BUCKET", "products")
}

// UploadProductImage pousse une image produit sous un nom unique et
// retourne son URL publique, utilisée pour remplir le champ image du
// formulaire admin. Le nom original du fichier n'est pas conservé :
// deux uploads du même fichier ne s'écrasent jamais.
func UploadProductImage(file *multipart.FileHeader) (string, error) {
	if MinioClient == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	object := uuid.NewString() + path.Ext(file.Filename)
	_, err = MinioClient.PutObject(context.Background(), imageBucket(), object, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return publicImageURL(object), nil
}

// publicImageURL construit l'URL servie au front pour une image stockée
func publicImageURL(object string) string {
	scheme := "http"
	if config.Getenv("MINIO_SECURE", "") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.Getenv("MINIO_ENDPOINT", ""), imageBucket(), object)
}
