package models

// All lists every persisted model in dependency order.
func All() []any {
	return []any{
		&OrganisationModel{},
		&UserModel{},
		&SessionModel{},
		&UserSettingsModel{},
		&CustomerModel{},
		&DealModel{},
		&CategoryModel{},
		&TicketModel{},
		&TicketCommentModel{},
		&TicketHistoryModel{},
		&TicketAttachmentModel{},
		&ProblemModel{},
		&ProblemTicketModel{},
		&DeviceModel{},
		&DeviceActionModel{},
	}
}
