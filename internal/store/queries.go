package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

const serviceColumns = `id, owner_id, service_name, description, category_id, subcategory_id,
	location, contact_email, phone, website, instagram, facebook, tiktok, linkedin,
	languages, opening_hours, show_online, provider_profile_image_url, created_at, updated_at`

// Service queries.
const (
	queryCreateService = `
		INSERT INTO service_listings (
			id, owner_id, service_name, description, category_id, subcategory_id,
			location, contact_email, phone, website, instagram, facebook, tiktok, linkedin,
			languages, opening_hours, show_online, provider_profile_image_url, created_at
		) VALUES (
			@id, @owner_id, @service_name, @description, @category_id, @subcategory_id,
			@location, @contact_email, @phone, @website, @instagram, @facebook, @tiktok, @linkedin,
			@languages, @opening_hours, @show_online, @provider_profile_image_url, now()
		)
		RETURNING created_at`

	queryUpdateService = `
		UPDATE service_listings SET
			service_name = @service_name,
			description = @description,
			category_id = @category_id,
			subcategory_id = @subcategory_id,
			location = @location,
			contact_email = @contact_email,
			phone = @phone,
			website = @website,
			instagram = @instagram,
			facebook = @facebook,
			tiktok = @tiktok,
			linkedin = @linkedin,
			languages = @languages,
			opening_hours = @opening_hours,
			show_online = @show_online,
			provider_profile_image_url = @provider_profile_image_url,
			updated_at = now()
		WHERE id = @id AND owner_id = @owner_id`

	queryDeleteService = `
		DELETE FROM service_listings WHERE id = $1 AND owner_id = $2`
)

// Rating queries.
const (
	queryCreateRating = `
		INSERT INTO service_ratings (
			service_id, user_id, work_quality, punctuality, comment, created_at
		) VALUES (
			@service_id, @user_id, @work_quality, @punctuality, @comment, now()
		)
		RETURNING created_at`

	queryListRatings = `
		SELECT service_id, user_id, work_quality, punctuality, COALESCE(comment, ''), created_at
		FROM service_ratings
		ORDER BY created_at`

	queryListRatingsForService = `
		SELECT service_id, user_id, work_quality, punctuality, COALESCE(comment, ''), created_at
		FROM service_ratings
		WHERE service_id = $1
		ORDER BY created_at`
)

const offerColumns = `id, owner_id, title, short_label, description, category_id, subcategory_id,
	service_name, locations, languages, original_price, discounted_price, valid_until,
	highlight_tag, image_url, phone, contact_email, website, instagram, facebook, tiktok,
	linkedin, created_at`

// Offer queries.
const (
	queryCreateOffer = `
		INSERT INTO service_offers (
			id, owner_id, title, short_label, description, category_id, subcategory_id,
			service_name, locations, languages, original_price, discounted_price, valid_until,
			highlight_tag, image_url, phone, contact_email, website, instagram, facebook,
			tiktok, linkedin, created_at
		) VALUES (
			@id, @owner_id, @title, @short_label, @description, @category_id, @subcategory_id,
			@service_name, @locations, @languages, @original_price, @discounted_price, @valid_until,
			@highlight_tag, @image_url, @phone, @contact_email, @website, @instagram, @facebook,
			@tiktok, @linkedin, now()
		)
		RETURNING created_at`

	queryUpdateOffer = `
		UPDATE service_offers SET
			title = @title,
			short_label = @short_label,
			description = @description,
			category_id = @category_id,
			subcategory_id = @subcategory_id,
			service_name = @service_name,
			locations = @locations,
			languages = @languages,
			original_price = @original_price,
			discounted_price = @discounted_price,
			valid_until = @valid_until,
			highlight_tag = @highlight_tag,
			image_url = @image_url,
			phone = @phone,
			contact_email = @contact_email,
			website = @website,
			instagram = @instagram,
			facebook = @facebook,
			tiktok = @tiktok,
			linkedin = @linkedin
		WHERE id = @id AND owner_id = @owner_id`

	queryDeleteOffer = `
		DELETE FROM service_offers WHERE id = $1 AND owner_id = $2`
)

const propertyColumns = `id, owner_id, status, buy_rent, property_type, title, description,
	price, currency, location, bedrooms, bathrooms, usable_area, gross_area, land_area,
	condition, furnished, energy_certificate, divisions, images, is_price_negotiable,
	contact_name, contact_email, contact_phone, created_at`

// Property queries.
const (
	queryCreateProperty = `
		INSERT INTO properties (
			id, owner_id, status, buy_rent, property_type, title, description,
			price, currency, location, bedrooms, bathrooms, usable_area, gross_area,
			land_area, condition, furnished, energy_certificate, divisions, images,
			is_price_negotiable, contact_name, contact_email, contact_phone, created_at
		) VALUES (
			@id, @owner_id, @status, @buy_rent, @property_type, @title, @description,
			@price, @currency, @location, @bedrooms, @bathrooms, @usable_area, @gross_area,
			@land_area, @condition, @furnished, @energy_certificate, @divisions, @images,
			@is_price_negotiable, @contact_name, @contact_email, @contact_phone, now()
		)
		RETURNING created_at`

	queryUpdateProperty = `
		UPDATE properties SET
			status = @status,
			buy_rent = @buy_rent,
			property_type = @property_type,
			title = @title,
			description = @description,
			price = @price,
			currency = @currency,
			location = @location,
			bedrooms = @bedrooms,
			bathrooms = @bathrooms,
			usable_area = @usable_area,
			gross_area = @gross_area,
			land_area = @land_area,
			condition = @condition,
			furnished = @furnished,
			energy_certificate = @energy_certificate,
			divisions = @divisions,
			images = @images,
			is_price_negotiable = @is_price_negotiable,
			contact_name = @contact_name,
			contact_email = @contact_email,
			contact_phone = @contact_phone
		WHERE id = @id AND owner_id = @owner_id`

	queryDeleteProperty = `
		DELETE FROM properties WHERE id = $1 AND owner_id = $2`
)

// Search request queries.
const queryCreateSearchRequest = `
	INSERT INTO property_search_requests (
		id, type, name, email, phone, from_date, to_date, min_size, notes, created_at
	) VALUES (
		@id, @type, @name, @email, @phone, @from_date, @to_date, @min_size, @notes, now()
	)
	RETURNING created_at`

// Stats query: one round trip for every gauge the scheduler exports.
const queryDirectoryStats = `
	SELECT
		(SELECT COUNT(*) FROM service_listings)                              AS services_total,
		(SELECT COUNT(*) FROM service_listings WHERE show_online)            AS services_visible,
		(SELECT COUNT(*) FROM service_ratings)                               AS ratings_total,
		(SELECT COUNT(*) FROM service_offers)                                AS offers_total,
		(SELECT COUNT(*) FROM service_offers
			WHERE valid_until IS NULL OR valid_until >= date_trunc('day', now())) AS offers_current,
		(SELECT COUNT(*) FROM properties)                                    AS properties_total,
		(SELECT COUNT(*) FROM properties WHERE status = 'active')            AS properties_active,
		(SELECT COUNT(*) FROM property_search_requests)                      AS search_requests`
