package controllers

import (
	"log"
	"strconv"

	"github.com/eventcity-api/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError logs the failure and writes the taxonomy-mapped status with
// a message-only body. Stack traces and wrapped causes never reach the caller.
func respondError(ctx *gin.Context, err error) {
	log.Printf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
}

// pathID parses the :id route parameter. Returns false after writing a 400
// response when the parameter is not a positive integer.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondError(ctx, apperrors.Malformed("invalid "+name+" path parameter"))
		return 0, false
	}
	return uint(id), true
}
