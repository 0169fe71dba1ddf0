package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const thumbnailMaxWidth = 480

// UploadImage 处理特色图与区块图片的上传请求。
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传的图片"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "只允许上传图片文件"})
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建上传目录失败"})
		return
	}

	// 生成唯一文件名
	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}

	fileURL := a.uploadURL + "/" + newFilename

	response := gin.H{
		"message": "上传成功",
		"url":     fileURL,
	}

	// 缩略图生成失败不影响上传结果
	if thumbName, err := a.writeThumbnail(filePath, newFilename); err == nil {
		response["thumbnailUrl"] = a.uploadURL + "/" + thumbName
	}

	c.JSON(http.StatusOK, response)
}

// writeThumbnail 为上传的图片生成等比缩略图。
func (a *API) writeThumbnail(sourcePath, sourceName string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	decoded, _, err := image.Decode(src)
	if err != nil {
		return "", err
	}

	bounds := decoded.Bounds()
	if bounds.Dx() <= thumbnailMaxWidth {
		return "", fmt.Errorf("image narrower than thumbnail width")
	}

	height := bounds.Dy() * thumbnailMaxWidth / bounds.Dx()
	thumb := image.NewRGBA(image.Rect(0, 0, thumbnailMaxWidth, height))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), decoded, bounds, draw.Over, nil)

	thumbName := "thumb-" + strings.TrimSuffix(sourceName, filepath.Ext(sourceName)) + ".jpg"
	out, err := os.Create(filepath.Join(a.uploadDir, thumbName))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return "", err
	}

	return thumbName, nil
}
