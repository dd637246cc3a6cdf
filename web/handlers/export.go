package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"qurocare.com/alms/web/common"
)

var exportColumns = []string{"ID", "Name", "Email", "Registered ID", "Clock In", "Clock Out", "Duration", "Status"}

// ExportAttendance streams the attendance table as an .xlsx workbook.
func (ep *Endpoint) ExportAttendance(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	for i, column := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, column)
	}

	for rowIdx, rec := range ep.svc.Store.Attendance {
		values := []interface{}{
			rec.ID, rec.Name, rec.Email, rec.RegisteredID,
			rec.ClockIn, rec.ClockOut, nil, rec.Status,
		}
		if rec.Duration != nil {
			values[6] = *rec.Duration
		}
		for colIdx, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="attendance.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
	}
}
