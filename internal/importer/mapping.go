package importer

import (
	"github.com/smghasemi/membersync/internal/model"
)

// Row-to-model mapping. All field normalization happens here so the
// pipeline loop stays a plain read-map-write sequence.

func shiftFromRow(row ShiftRow) *model.Shift {
	return &model.Shift{
		ShiftID:   row.ShiftID,
		ShiftDesc: row.ShiftDesc,
	}
}

func roleFromRow(row RoleRow) *model.PersonRole {
	return &model.PersonRole{
		RoleID:   row.RoleID,
		RoleDesc: row.RoleDesc,
	}
}

func membershipTypeFromRow(row MembershipTypeRow) *model.MembershipType {
	return &model.MembershipType{
		MembershipTypeID:   row.MembershipTypeID,
		MembershipTypeDesc: row.MembershipTypeDesc,
	}
}

func userFromRow(row UserRow) *model.User {
	var username, password string
	if row.UserName != nil {
		username = *row.UserName
	}
	if row.UPassword != nil {
		password = *row.UPassword
	}

	return &model.User{
		UserID:           row.UserID,
		Username:         username,
		Password:         password, // opaque, stored as received
		IsAdmin:          row.IsAdmin,
		IsActive:         row.IsActive,
		ShiftID:          row.ShiftID,
		PersonID:         row.PersonID, // may point at a person imported later
		CreationDatetime: CombineDateTime(row.CreationDate, row.CreationTime),
	}
}

func personFromRow(row PersonRow) *model.Person {
	return &model.Person{
		PersonID:             row.PersonID,
		FirstName:            row.FirstName,
		LastName:             row.LastName,
		FullName:             row.FullName,
		FatherName:           row.FatherName,
		Gender:               MapGender(row.Gender),
		NationalCode:         row.NationalCode,
		NIdentity:            row.NIdentity,
		PersonImage:          Transcode(row.PersonImage),
		ThumbnailImage:       Transcode(row.ThumbnailImage),
		BirthDate:            row.BirthDate,
		Tel:                  row.Tel,
		Mobile:               row.Mobile,
		Email:                row.Email,
		Education:            row.Education,
		Job:                  row.Job,
		HasInsurance:         row.HasInsurance,
		InsuranceNo:          row.InsuranceNo,
		InsStartDate:         row.InsStartDate,
		InsEndDate:           row.InsEndDate,
		Address:              row.PAddress,
		HasParent:            row.HasParent,
		TeamName:             row.TeamName,
		ShiftID:              row.ShiftID,
		UserID:               row.UserID, // may point at a user imported later
		CreationDatetime:     CombineDateTime(row.CreationDate, row.CreationTime),
		Modifier:             row.Modifier,
		ModificationDatetime: TimestampString(row.ModificationTime),
	}
}

func memberFromRow(row MemberRow) *model.Member {
	return &model.Member{
		MemberID:             row.MemberID,
		CardNo:               row.CardNo,
		PersonID:             row.PersonID, // raw id, not resolved
		IsBlackList:          row.IsBlackList,
		BoxNo:                row.BoxNo,
		HasFinger:            row.HasFinger,
		MembershipDatetime:   CombineDateTime(row.MembershipDate, row.MembershipTime),
		Modifier:             row.Modifier,
		ModificationDatetime: TimestampString(row.ModificationTime),
		IsFamily:             row.IsFamily,
		MaxDebit:             row.MaxDebit,
		Salary:               row.Salary,
		Minutiae:             row.Minutiae,
		Minutiae2:            row.Minutiae2,
		Minutiae3:            row.Minutiae3,
		FaceTemplate1:        row.FaceTemplate1,
		FaceTemplate2:        row.FaceTemplate2,
		FaceTemplate3:        row.FaceTemplate3,
		FaceTemplate4:        row.FaceTemplate4,
		FaceTemplate5:        row.FaceTemplate5,
	}
}
