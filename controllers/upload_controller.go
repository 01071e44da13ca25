package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/osociohoteleiro/praiabela/models"
	"github.com/osociohoteleiro/praiabela/services"
	"github.com/osociohoteleiro/praiabela/utils"
)

const (
	maxImageSize = 5 * 1024 * 1024   // 5MB
	maxVideoSize = 100 * 1024 * 1024 // 100MB
	maxBatchSize = 10
)

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

var videoMimeTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

type UploadController struct {
	StorageSvc *services.StorageService
	MediaSvc   *services.MediaService
}

func NewUploadController(storage *services.StorageService, media *services.MediaService) *UploadController {
	return &UploadController{StorageSvc: storage, MediaSvc: media}
}

// storageReady guards the handlers when the process started without
// blob-store configuration.
func (uc *UploadController) storageReady(c *gin.Context) bool {
	if uc.StorageSvc == nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Serviço de armazenamento não configurado")
		return false
	}
	return true
}

func checkFile(header *multipart.FileHeader, allowed map[string]bool, maxSize int64) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !allowed[contentType] {
		return "", fmt.Errorf("Tipo de arquivo não permitido. Use apenas JPG, PNG, WEBP, MP4 ou WebM.")
	}
	if header.Size > maxSize {
		return "", fmt.Errorf("Arquivo excede o tamanho máximo de %dMB", maxSize/(1024*1024))
	}
	return contentType, nil
}

// saveUpload pushes the blob first and records it second. If the media
// row fails, the just-stored object is deleted again so the blob store
// and the media log never disagree.
func (uc *UploadController) saveUpload(c *gin.Context, header *multipart.FileHeader, folder, mediaType, category, contentType string) (services.UploadResult, error) {
	file, err := header.Open()
	if err != nil {
		return services.UploadResult{}, err
	}
	defer file.Close()

	result, err := uc.StorageSvc.Upload(c.Request.Context(), folder, header.Filename, contentType, file)
	if err != nil {
		return services.UploadResult{}, err
	}

	record := models.Media{
		Type:       mediaType,
		Category:   category,
		URL:        result.URL,
		StorageKey: result.Key,
		Filename:   result.Filename,
		Size:       header.Size,
	}
	if err := uc.MediaSvc.Create(&record); err != nil {
		if delErr := uc.StorageSvc.Delete(c.Request.Context(), result.Key); delErr != nil {
			log.Printf("orphaned object %s after failed media insert: %v", result.Key, delErr)
		}
		return services.UploadResult{}, err
	}
	return result, nil
}

// POST /api/upload/image
func (uc *UploadController) UploadImage(c *gin.Context) {
	if !uc.storageReady(c) {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Nenhum arquivo enviado")
		return
	}

	contentType, err := checkFile(header, imageMimeTypes, maxImageSize)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeUploadRejected, err.Error())
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = "general"
	}

	result, err := uc.saveUpload(c, header, "images", models.MediaTypeImage, category, contentType)
	if err != nil {
		log.Printf("image upload error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao fazer upload da imagem")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Upload realizado com sucesso",
		"url":      result.URL,
		"key":      result.Key,
		"filename": result.Filename,
	})
}

// POST /api/upload/video
func (uc *UploadController) UploadVideo(c *gin.Context) {
	if !uc.storageReady(c) {
		return
	}

	header, err := c.FormFile("video")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Nenhum arquivo enviado")
		return
	}

	contentType, err := checkFile(header, videoMimeTypes, maxVideoSize)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeUploadRejected, err.Error())
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = "hero"
	}

	result, err := uc.saveUpload(c, header, "videos", models.MediaTypeVideo, category, contentType)
	if err != nil {
		log.Printf("video upload error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao fazer upload do vídeo")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Upload realizado com sucesso",
		"url":      result.URL,
		"key":      result.Key,
		"filename": result.Filename,
	})
}

// POST /api/upload/images
func (uc *UploadController) UploadImages(c *gin.Context) {
	if !uc.storageReady(c) {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Nenhum arquivo enviado")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Nenhum arquivo enviado")
		return
	}
	if len(files) > maxBatchSize {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeUploadRejected,
			fmt.Sprintf("Máximo de %d arquivos por envio", maxBatchSize))
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = "gallery"
	}

	results := make([]services.UploadResult, 0, len(files))
	for _, header := range files {
		contentType, err := checkFile(header, imageMimeTypes, maxImageSize)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeUploadRejected, err.Error())
			return
		}

		result, err := uc.saveUpload(c, header, "images", models.MediaTypeImage, category, contentType)
		if err != nil {
			log.Printf("batch image upload error: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao fazer upload das imagens")
			return
		}
		results = append(results, result)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d arquivos enviados com sucesso", len(results)),
		"files":   results,
	})
}

// DELETE /api/upload/*key
func (uc *UploadController) DeleteFile(c *gin.Context) {
	if !uc.storageReady(c) {
		return
	}

	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Chave do arquivo é obrigatória")
		return
	}

	if err := uc.StorageSvc.Delete(c.Request.Context(), key); err != nil {
		log.Printf("delete file error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao deletar arquivo")
		return
	}

	if err := uc.MediaSvc.DeleteByKey(key); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao deletar arquivo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Arquivo deletado com sucesso"})
}
