package ticket

import "time"

type Attachment struct {
	id         uint
	ticketID   uint
	fileName   string
	fileURL    string
	uploadedBy *uint
	uploadedAt time.Time
}

func ReconstructAttachment(id, ticketID uint, fileName, fileURL string, uploadedBy *uint, uploadedAt time.Time) *Attachment {
	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		fileName:   fileName,
		fileURL:    fileURL,
		uploadedBy: uploadedBy,
		uploadedAt: uploadedAt,
	}
}

func (a *Attachment) ID() uint              { return a.id }
func (a *Attachment) TicketID() uint        { return a.ticketID }
func (a *Attachment) FileName() string      { return a.fileName }
func (a *Attachment) FileURL() string       { return a.fileURL }
func (a *Attachment) UploadedBy() *uint     { return a.uploadedBy }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }
