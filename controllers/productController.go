package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type ProductController struct {
	productService services.IProductService
	bucket         string
}

func NewProductController(productService services.IProductService, bucket string) *ProductController {
	return &ProductController{productService: productService, bucket: bucket}
}

func (c *ProductController) Create(ctx *gin.Context) {
	var input services.CreateProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	product, err := c.productService.Create(input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, product)
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.productService.FindAll(parseListQuery(ctx))
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, products)
}

func (c *ProductController) FindOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	product, err := c.productService.FindOne(id)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, product)
}

func (c *ProductController) FindByService(ctx *gin.Context) {
	serviceID, ok := parseIDParam(ctx, "serviceId")
	if !ok {
		return
	}

	products, err := c.productService.FindByService(serviceID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, products)
}

func (c *ProductController) FindByHotel(ctx *gin.Context) {
	hotelID, ok := parseIDParam(ctx, "hotelId")
	if !ok {
		return
	}

	products, err := c.productService.FindByHotel(hotelID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, products)
}

func (c *ProductController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	product, err := c.productService.Update(id, input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, product)
}

func (c *ProductController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.productService.Remove(id); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "Product deleted"})
}

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadImages accepts a multipart form with a productId field and one or
// more files under "images", uploads them to S3 and appends the resulting
// URLs to the product's image list.
func (c *ProductController) UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"statusCode":    http.StatusBadRequest,
			"statusMessage": "Failed",
			"error":         "invalid form data",
		})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"statusCode":    http.StatusBadRequest,
			"statusMessage": "Failed",
			"error":         "no files uploaded",
		})
		return
	}

	productID, err := strconv.ParseUint(ctx.PostForm("productId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"statusCode":    http.StatusBadRequest,
			"statusMessage": "Failed",
			"error":         "invalid productId",
		})
		return
	}

	// Product must exist before we spend time on uploads.
	if _, err := c.productService.FindOne(uint(productID)); err != nil {
		sendError(ctx, err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		sendError(ctx, err)
		return
	}

	var uploadedURLs []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			logrus.WithError(openErr).WithField("file", file.Filename).Warn("failed to open uploaded file")
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key prevents overwrites between products and uploads.
		key := fmt.Sprintf("%d-%s-%s", productID, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(c.bucket),
			Key:         aws.String(key),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			logrus.WithError(uploadErr).WithField("file", file.Filename).Warn("failed to upload file to S3")
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedURLs = append(uploadedURLs, result.Location)
	}

	product, err := c.productService.AddImages(uint(productID), uploadedURLs)
	if err != nil {
		sendError(ctx, err)
		return
	}

	sendSuccess(ctx, http.StatusOK, gin.H{
		"product": product,
		"urls":    uploadedURLs,
		"failed":  failedUploads,
	})
}
