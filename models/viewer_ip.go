package models

import "server/db"

// ViewerIP deduplicates post views: each address counts at most once
// per post, via the post_views join table.
type ViewerIP struct {
	ID      uint64 `gorm:"primaryKey"`
	Address string `gorm:"type:varchar(100);index:uniq_viewer_ip,unique"`
}

// RecordView associates the visitor address with the post's view set.
// Both the address record and the association are created at most once.
func RecordView(post *Post, address string) error {
	var ip ViewerIP
	if err := db.Instance.Where("address = ?", address).
		FirstOrCreate(&ip, ViewerIP{Address: address}).Error; err != nil {
		return err
	}
	return db.Instance.Model(post).Association("Views").Append(&ip)
}

func TotalViews(post *Post) int64 {
	return db.Instance.Model(post).Association("Views").Count()
}
