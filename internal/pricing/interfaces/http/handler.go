package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/optionpricing/internal/pricing/application"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"
)

// HTTP 处理器
// 负责处理与定价相关的 HTTP 请求
type PricingHandler struct {
	svc *application.PricingService
}

// 创建 HTTP 处理器实例
func NewPricingHandler(svc *application.PricingService) *PricingHandler {
	return &PricingHandler{svc: svc}
}

// 注册路由
// 将处理器方法绑定到 Gin 路由引擎
func (h *PricingHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/pricing")
	{
		api.POST("/option/price", h.PriceOption)
		api.POST("/option/greeks", h.CalculateGreeks)
		api.POST("/option/implied-volatility", h.CalibrateImpliedVolatility)
		api.POST("/simulation/walk", h.SimulateWalk)
	}
}

// PriceOption 计算期权价格
func (h *PricingHandler) PriceOption(c *gin.Context) {
	var cmd application.PriceOptionCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.svc.PriceOption(c.Request.Context(), cmd)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to calculate option price", "error", err)
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CalculateGreeks 计算希腊字母
func (h *PricingHandler) CalculateGreeks(c *gin.Context) {
	var req application.OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.svc.CalculateGreeks(c.Request.Context(), req)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to calculate Greeks", "error", err)
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CalibrateImpliedVolatility 反推隐含波动率
func (h *PricingHandler) CalibrateImpliedVolatility(c *gin.Context) {
	var cmd application.CalibrateVolatilityCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.svc.CalibrateImpliedVolatility(c.Request.Context(), cmd)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to calibrate implied volatility", "error", err)
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SimulateWalk 生成价格随机游走路径
func (h *PricingHandler) SimulateWalk(c *gin.Context) {
	var cmd application.SimulateWalkCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.svc.SimulateWalk(c.Request.Context(), cmd)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to simulate walk", "error", err)
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
