package productcontroller

import (
	"net/http"

	"github.com/G9140/E-commerce-website/state"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportProductsToExcel writes the catalog out as a spreadsheet for the
// admin dashboard.
// GET /admin/products/export-excel
func ExportProductsToExcel(catalog *state.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := catalog.All()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Title", "Description", "Price", "Category",
			"Image", "Stock", "Rating", "Reviews", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Reviews)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
