// file: internals/features/forms/responses/service/csv_export.go
package service

import (
	"strings"

	"formku_backend/internals/constants"
	formModel "formku_backend/internals/features/forms/forms/model"
	responseModel "formku_backend/internals/features/forms/responses/model"
	helper "formku_backend/internals/helpers"
)

const csvSubmittedAtHeader = "Submitted At"

// BuildResponsesCSV
//   - header: "Submitted At", lalu teks pertanyaan sesuai urutan form
//   - tiap baris: timestamp UTC + jawaban per pertanyaan, selalu di-quote
//   - jawaban yang tidak ada -> ""
//   - baris dipisah "\n", tanpa newline di akhir
func BuildResponsesCSV(form *formModel.FormModel, rows []responseModel.FormResponseModel) []byte {
	var b strings.Builder

	b.WriteString(csvSubmittedAtHeader)
	for _, q := range form.Questions {
		b.WriteByte(',')
		b.WriteString(csvHeaderCell(q.FormQuestionText))
	}

	for i := range rows {
		answers := rows[i].AnswerMap()
		b.WriteByte('\n')
		b.WriteString(rows[i].FormResponseCreatedAt.UTC().Format(constants.CSVTimestampLayout))
		for _, q := range form.Questions {
			b.WriteByte(',')
			b.WriteString(csvQuote(answers[q.FormQuestionID.String()]))
		}
	}
	return []byte(b.String())
}

// ExportFilename "<slug judul>-responses.csv"
func ExportFilename(title string) string {
	return helper.SlugOr(title, "form") + "-responses.csv"
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// header hanya di-quote kalau perlu, supaya header polos tetap terbaca apa adanya
func csvHeaderCell(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return csvQuote(s)
	}
	return s
}
