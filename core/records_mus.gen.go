// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapHj97GSxDnE1bha77ΔΣ38wQΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	slice7exl5ΣSqrgDoqyLvj2HouwΞΞ = ord.NewSliceSer[SkillCategory](SkillCategoryMUS)
	sliceQ94R5EGAFmjAZiDpLBk75wΞΞ = ord.NewSliceSer[string](ord.String)
	sliceQOUN13EKkxuzWtxΣDDP0qgΞΞ = ord.NewSliceSer[LeadershipEntry](LeadershipEntryMUS)
	sliceTJwAdlMJOB4nhXgzT3oSsQΞΞ = ord.NewSliceSer[ExperienceEntry](ExperienceEntryMUS)
	sliceYOΔoK5OrBzVbΣwΔCHfX3ngΞΞ = ord.NewSliceSer[CertificationEntry](CertificationEntryMUS)
	slicek4Δ8PvΔCw589Kqq4cYcuPAΞΞ = ord.NewSliceSer[EducationEntry](EducationEntryMUS)
	slicemJg74J3wOSYBIvcΔbJ5ocQΞΞ = ord.NewSliceSer[ProjectEntry](ProjectEntryMUS)
	sliceu0zΔ2UmY7QhKzCYFdiyUvQΞΞ = ord.NewSliceSer[ExtraSection](ExtraSectionMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return ord.String.Size(string(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var SummaryMUS = summaryMUS{}

type summaryMUS struct{}

func (s summaryMUS) Marshal(v Summary, bs []byte) (n int) {
	return ord.String.Marshal(v.Text, bs)
}

func (s summaryMUS) Unmarshal(bs []byte) (v Summary, n int, err error) {
	v.Text, n, err = ord.String.Unmarshal(bs)
	return
}

func (s summaryMUS) Size(v Summary) (size int) {
	return ord.String.Size(v.Text)
}

func (s summaryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	return
}

var ContactMUS = contactMUS{}

type contactMUS struct{}

func (s contactMUS) Marshal(v Contact, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.Phone, bs[n:])
	n += ord.String.Marshal(v.Linkedin, bs[n:])
	return n + ord.String.Marshal(v.Github, bs[n:])
}

func (s contactMUS) Unmarshal(bs []byte) (v Contact, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Phone, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Linkedin, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Github, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s contactMUS) Size(v Contact) (size int) {
	size = ord.String.Size(v.Name)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.Phone)
	size += ord.String.Size(v.Linkedin)
	return size + ord.String.Size(v.Github)
}

func (s contactMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ExperienceEntryMUS = experienceEntryMUS{}

type experienceEntryMUS struct{}

func (s experienceEntryMUS) Marshal(v ExperienceEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Company, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.StartDate, bs[n:])
	n += ord.String.Marshal(v.EndDate, bs[n:])
	n += sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Marshal(v.Bullets, bs[n:])
	return n + sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Marshal(v.Technologies, bs[n:])
}

func (s experienceEntryMUS) Unmarshal(bs []byte) (v ExperienceEntry, n int, err error) {
	v.Company, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StartDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EndDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bullets, n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Technologies, n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s experienceEntryMUS) Size(v ExperienceEntry) (size int) {
	size = ord.String.Size(v.Company)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Location)
	size += ord.String.Size(v.StartDate)
	size += ord.String.Size(v.EndDate)
	size += sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Size(v.Bullets)
	return size + sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Size(v.Technologies)
}

func (s experienceEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Skip(bs[n:])
	n += n1
	return
}

var ProjectEntryMUS = projectEntryMUS{}

type projectEntryMUS struct{}

func (s projectEntryMUS) Marshal(v ProjectEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.Description, bs[n:])
	n += sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Marshal(v.Technologies, bs[n:])
	n += ord.String.Marshal(v.Link, bs[n:])
	return n + sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Marshal(v.Bullets, bs[n:])
}

func (s projectEntryMUS) Unmarshal(bs []byte) (v ProjectEntry, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Technologies, n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Link, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bullets, n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s projectEntryMUS) Size(v ProjectEntry) (size int) {
	size = ord.String.Size(v.Name)
	size += ord.String.Size(v.Description)
	size += sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Size(v.Technologies)
	size += ord.String.Size(v.Link)
	return size + sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Size(v.Bullets)
}

func (s projectEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Skip(bs[n:])
	n += n1
	return
}

var EducationEntryMUS = educationEntryMUS{}

type educationEntryMUS struct{}

func (s educationEntryMUS) Marshal(v EducationEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Institution, bs)
	n += ord.String.Marshal(v.Degree, bs[n:])
	n += ord.String.Marshal(v.Field, bs[n:])
	n += ord.String.Marshal(v.GPA, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.StartDate, bs[n:])
	return n + ord.String.Marshal(v.EndDate, bs[n:])
}

func (s educationEntryMUS) Unmarshal(bs []byte) (v EducationEntry, n int, err error) {
	v.Institution, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Degree, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Field, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GPA, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StartDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EndDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s educationEntryMUS) Size(v EducationEntry) (size int) {
	size = ord.String.Size(v.Institution)
	size += ord.String.Size(v.Degree)
	size += ord.String.Size(v.Field)
	size += ord.String.Size(v.GPA)
	size += ord.String.Size(v.Location)
	size += ord.String.Size(v.StartDate)
	return size + ord.String.Size(v.EndDate)
}

func (s educationEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var SkillCategoryMUS = skillCategoryMUS{}

type skillCategoryMUS struct{}

func (s skillCategoryMUS) Marshal(v SkillCategory, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	return n + sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Marshal(v.Items, bs[n:])
}

func (s skillCategoryMUS) Unmarshal(bs []byte) (v SkillCategory, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Items, n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s skillCategoryMUS) Size(v SkillCategory) (size int) {
	size = ord.String.Size(v.Name)
	return size + sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Size(v.Items)
}

func (s skillCategoryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Skip(bs[n:])
	n += n1
	return
}

var LeadershipEntryMUS = leadershipEntryMUS{}

type leadershipEntryMUS struct{}

func (s leadershipEntryMUS) Marshal(v LeadershipEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Role, bs)
	n += ord.String.Marshal(v.Organization, bs[n:])
	return n + ord.String.Marshal(v.Description, bs[n:])
}

func (s leadershipEntryMUS) Unmarshal(bs []byte) (v LeadershipEntry, n int, err error) {
	v.Role, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Organization, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s leadershipEntryMUS) Size(v LeadershipEntry) (size int) {
	size = ord.String.Size(v.Role)
	size += ord.String.Size(v.Organization)
	return size + ord.String.Size(v.Description)
}

func (s leadershipEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var CertificationEntryMUS = certificationEntryMUS{}

type certificationEntryMUS struct{}

func (s certificationEntryMUS) Marshal(v CertificationEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.Issuer, bs[n:])
	return n + ord.String.Marshal(v.Date, bs[n:])
}

func (s certificationEntryMUS) Unmarshal(bs []byte) (v CertificationEntry, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Issuer, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Date, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s certificationEntryMUS) Size(v CertificationEntry) (size int) {
	size = ord.String.Size(v.Name)
	size += ord.String.Size(v.Issuer)
	return size + ord.String.Size(v.Date)
}

func (s certificationEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ExtraSectionMUS = extraSectionMUS{}

type extraSectionMUS struct{}

func (s extraSectionMUS) Marshal(v ExtraSection, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.Text, bs[n:])
	return n + sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Marshal(v.Items, bs[n:])
}

func (s extraSectionMUS) Unmarshal(bs []byte) (v ExtraSection, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Items, n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s extraSectionMUS) Size(v ExtraSection) (size int) {
	size = ord.String.Size(v.Name)
	size += ord.String.Size(v.Text)
	return size + sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Size(v.Items)
}

func (s extraSectionMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceQ94R5EGAFmjAZiDpLBk75wΞΞ.Skip(bs[n:])
	n += n1
	return
}

var StructuredRecordMUS = structuredRecordMUS{}

type structuredRecordMUS struct{}

func (s structuredRecordMUS) Marshal(v StructuredRecord, bs []byte) (n int) {
	n = SummaryMUS.Marshal(v.Summary, bs)
	n += ContactMUS.Marshal(v.Contact, bs[n:])
	n += sliceTJwAdlMJOB4nhXgzT3oSsQΞΞ.Marshal(v.Experience, bs[n:])
	n += slicemJg74J3wOSYBIvcΔbJ5ocQΞΞ.Marshal(v.Projects, bs[n:])
	n += slicek4Δ8PvΔCw589Kqq4cYcuPAΞΞ.Marshal(v.Education, bs[n:])
	n += slice7exl5ΣSqrgDoqyLvj2HouwΞΞ.Marshal(v.Skills, bs[n:])
	n += sliceQOUN13EKkxuzWtxΣDDP0qgΞΞ.Marshal(v.Leadership, bs[n:])
	n += sliceYOΔoK5OrBzVbΣwΔCHfX3ngΞΞ.Marshal(v.Certifications, bs[n:])
	return n + sliceu0zΔ2UmY7QhKzCYFdiyUvQΞΞ.Marshal(v.Extra, bs[n:])
}

func (s structuredRecordMUS) Unmarshal(bs []byte) (v StructuredRecord, n int, err error) {
	v.Summary, n, err = SummaryMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Contact, n1, err = ContactMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Experience, n1, err = sliceTJwAdlMJOB4nhXgzT3oSsQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Projects, n1, err = slicemJg74J3wOSYBIvcΔbJ5ocQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Education, n1, err = slicek4Δ8PvΔCw589Kqq4cYcuPAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = slice7exl5ΣSqrgDoqyLvj2HouwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Leadership, n1, err = sliceQOUN13EKkxuzWtxΣDDP0qgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Certifications, n1, err = sliceYOΔoK5OrBzVbΣwΔCHfX3ngΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Extra, n1, err = sliceu0zΔ2UmY7QhKzCYFdiyUvQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s structuredRecordMUS) Size(v StructuredRecord) (size int) {
	size = SummaryMUS.Size(v.Summary)
	size += ContactMUS.Size(v.Contact)
	size += sliceTJwAdlMJOB4nhXgzT3oSsQΞΞ.Size(v.Experience)
	size += slicemJg74J3wOSYBIvcΔbJ5ocQΞΞ.Size(v.Projects)
	size += slicek4Δ8PvΔCw589Kqq4cYcuPAΞΞ.Size(v.Education)
	size += slice7exl5ΣSqrgDoqyLvj2HouwΞΞ.Size(v.Skills)
	size += sliceQOUN13EKkxuzWtxΣDDP0qgΞΞ.Size(v.Leadership)
	size += sliceYOΔoK5OrBzVbΣwΔCHfX3ngΞΞ.Size(v.Certifications)
	return size + sliceu0zΔ2UmY7QhKzCYFdiyUvQΞΞ.Size(v.Extra)
}

func (s structuredRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = SummaryMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ContactMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceTJwAdlMJOB4nhXgzT3oSsQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicemJg74J3wOSYBIvcΔbJ5ocQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicek4Δ8PvΔCw589Kqq4cYcuPAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice7exl5ΣSqrgDoqyLvj2HouwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceQOUN13EKkxuzWtxΣDDP0qgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceYOΔoK5OrBzVbΣwΔCHfX3ngΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceu0zΔ2UmY7QhKzCYFdiyUvQΞΞ.Skip(bs[n:])
	n += n1
	return
}

var RecordMUS = recordMUS{}

type recordMUS struct{}

func (s recordMUS) Marshal(v Record, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.RawText, bs[n:])
	n += StructuredRecordMUS.Marshal(v.Structured, bs[n:])
	n += mapHj97GSxDnE1bha77ΔΣ38wQΞΞ.Marshal(v.Metadata, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s recordMUS) Unmarshal(bs []byte) (v Record, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.RawText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Structured, n1, err = StructuredRecordMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = mapHj97GSxDnE1bha77ΔΣ38wQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s recordMUS) Size(v Record) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.RawText)
	size += StructuredRecordMUS.Size(v.Structured)
	size += mapHj97GSxDnE1bha77ΔΣ38wQΞΞ.Size(v.Metadata)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s recordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = StructuredRecordMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapHj97GSxDnE1bha77ΔΣ38wQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var QueueMessageMUS = queueMessageMUS{}

type queueMessageMUS struct{}

func (s queueMessageMUS) Marshal(v QueueMessage, bs []byte) (n int) {
	n = varint.Uint64.Marshal(v.Seq, bs)
	n += ord.ByteSlice.Marshal(v.Body, bs[n:])
	n += varint.Uint32.Marshal(v.Attempts, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.EnqueuedAt, bs[n:])
}

func (s queueMessageMUS) Unmarshal(bs []byte) (v QueueMessage, n int, err error) {
	v.Seq, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Body, n1, err = ord.ByteSlice.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Attempts, n1, err = varint.Uint32.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EnqueuedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s queueMessageMUS) Size(v QueueMessage) (size int) {
	size = varint.Uint64.Size(v.Seq)
	size += ord.ByteSlice.Size(v.Body)
	size += varint.Uint32.Size(v.Attempts)
	return size + raw.TimeUnixMicro.Size(v.EnqueuedAt)
}

func (s queueMessageMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Uint64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.ByteSlice.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Uint32.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
